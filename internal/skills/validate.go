package skills

import "github.com/xeipuuv/gojsonschema"

// validateOntology checks ontology JSON against the embedded schema before
// it is trusted as configuration.
func validateOntology(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(ontologySchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &OntologyFormatError{Message: "schema validation could not run", Cause: err}
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return &OntologyValidationError{Problems: problems}
	}

	return nil
}
