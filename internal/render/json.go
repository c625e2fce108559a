package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/homedraft/homedraft/pkg/concept"
)

// JSON writes the concept as indented JSON in the wire shape of pkg/concept,
// terminated by a newline so reports compose in shells.
func JSON(w io.Writer, c *concept.Concept) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal concept: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
