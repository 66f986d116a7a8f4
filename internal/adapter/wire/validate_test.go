package wire

import (
	"strings"
	"testing"
)

const schemaPath = "../../../templates/cv.schema.json"

func TestValidateAcceptsFullContent(t *testing.T) {
	c := FromContent(sampleModelContent())
	if err := Validate(schemaPath, c); err != nil {
		t.Fatalf("valid content rejected: %v", err)
	}
}

func TestValidateRejectsMissingName(t *testing.T) {
	c := Content{PersonalInfo: PersonalInfo{Email: "j@x"}}
	err := Validate(schemaPath, c)
	if err == nil {
		t.Fatal("expected validation failure for missing full_name")
	}
	if !strings.Contains(err.Error(), "full_name") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}
