package wire

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks a wire payload against the content schema before it is
// submitted. A failure here is a local validation error: the save is refused
// and editor state is left intact.
func Validate(schemaPath string, c Content) error {
	// The reference loader needs an absolute file URL.
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(c)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("content validation failed: %s", msgs)
}
