// Package schema publishes the /assess contract as JSON Schema documents:
// one per profile payload, plus the response envelope.
package schema

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// Payload describes the request body a profile sends. Every field is a
// string; all keys are always present, even when empty.
func Payload(p controller.Profile) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	keys := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		s := &jsonschema.Schema{Type: "string", Title: f.Label}
		if f.Required {
			s.MinLength = ptr(uint64(1))
		}
		props.Set(f.Name, s)
		keys = append(keys, f.Name)
	}
	return &jsonschema.Schema{
		Version:              draft,
		ID:                   jsonschema.ID("palmwatch/" + p.Name + "/payload"),
		Title:                p.Name + " payload",
		Type:                 "object",
		Properties:           props,
		Required:             keys,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// Envelope describes the response body. It is reflected from the domain
// type, with Scalar mapped to "number or string".
func Envelope() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Mapper:         mapScalar,
	}
	s := r.Reflect(new(domain.Envelope))
	s.ID = "palmwatch/envelope"
	s.Title = "assessment envelope"
	return s
}

var scalarType = reflect.TypeOf(domain.Scalar{})

func mapScalar(t reflect.Type) *jsonschema.Schema {
	if t != scalarType {
		return nil
	}
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string"},
		},
	}
}

func ptr[T any](v T) *T { return &v }
