package schema

import (
	"sort"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// formats we will declare on generated string properties, checked with the
// same format checkers that validation uses so that a generated schema always
// accepts the payload it was generated from.
var inferredFormats = []string{"date-time", "uuid", "email", "uri"}

// Infer builds a JSON Schema document describing the shape of payload: types,
// required keys, nesting, and recognized string formats. Every key present in
// an object is treated as required. Array items are described by merging the
// shapes of all elements, so a key missing from some elements becomes optional
// and a field whose type varies becomes a type union.
func Infer(payload ldvalue.Value) map[string]interface{} {
	doc := inferValue(payload)
	doc["$schema"] = "http://json-schema.org/draft-07/schema#"
	return doc
}

func inferValue(v ldvalue.Value) map[string]interface{} {
	switch v.Type() {
	case ldvalue.ObjectType:
		properties := make(map[string]interface{})
		keys := v.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			properties[key] = inferValue(v.GetByKey(key))
		}
		return map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   keys,
		}
	case ldvalue.ArrayType:
		doc := map[string]interface{}{"type": "array"}
		if v.Count() > 0 {
			items := inferValue(v.GetByIndex(0))
			for i := 1; i < v.Count(); i++ {
				items = mergeSchemas(items, inferValue(v.GetByIndex(i)))
			}
			doc["items"] = items
		}
		return doc
	case ldvalue.StringType:
		doc := map[string]interface{}{"type": "string"}
		if format := detectFormat(v.StringValue()); format != "" {
			doc["format"] = format
		}
		return doc
	case ldvalue.NumberType:
		return map[string]interface{}{"type": "number"}
	case ldvalue.BoolType:
		return map[string]interface{}{"type": "boolean"}
	default:
		return map[string]interface{}{"type": "null"}
	}
}

// mergeSchemas combines the inferred schemas of two sibling array elements into
// one that accepts anything either element would. Types are unioned, required
// keys are intersected, and a format survives only if both elements carry it.
func mergeSchemas(a, b map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{"type": mergeTypes(a["type"], b["type"])}

	if aFormat, ok := a["format"]; ok && aFormat == b["format"] {
		merged["format"] = aFormat
	}

	aProps, aIsObject := a["properties"].(map[string]interface{})
	bProps, bIsObject := b["properties"].(map[string]interface{})
	switch {
	case aIsObject && bIsObject:
		merged["properties"] = mergeProperties(aProps, bProps)
		if required := intersectStrings(stringList(a["required"]), stringList(b["required"])); len(required) > 0 {
			merged["required"] = required
		}
	case aIsObject:
		copySchemaKeys(merged, a)
	case bIsObject:
		copySchemaKeys(merged, b)
	}

	aItems, aIsArray := a["items"].(map[string]interface{})
	bItems, bIsArray := b["items"].(map[string]interface{})
	switch {
	case aIsArray && bIsArray:
		merged["items"] = mergeSchemas(aItems, bItems)
	case aIsArray:
		merged["items"] = aItems
	case bIsArray:
		merged["items"] = bItems
	}

	return merged
}

func mergeProperties(a, b map[string]interface{}) map[string]interface{} {
	properties := make(map[string]interface{})
	for key, schema := range a {
		properties[key] = schema
	}
	for key, schema := range b {
		bSchema := schema.(map[string]interface{})
		if aSchema, ok := properties[key].(map[string]interface{}); ok {
			properties[key] = mergeSchemas(aSchema, bSchema)
		} else {
			properties[key] = bSchema
		}
	}
	return properties
}

// copySchemaKeys carries an object shape into merged when only one side is an
// object. The properties and required keywords only constrain object
// instances, so the other side's type is unaffected by them.
func copySchemaKeys(merged, from map[string]interface{}) {
	merged["properties"] = from["properties"]
	if required, ok := from["required"]; ok {
		merged["required"] = required
	}
}

func mergeTypes(a, b interface{}) interface{} {
	types := stringList(a)
	for _, t := range stringList(b) {
		if !containsString(types, t) {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	if len(types) == 1 {
		return types[0]
	}
	return types
}

func stringList(v interface{}) []string {
	switch list := v.(type) {
	case string:
		return []string{list}
	case []string:
		return append([]string(nil), list...)
	}
	return nil
}

func intersectStrings(a, b []string) []string {
	var out []string
	for _, s := range a {
		if containsString(b, s) {
			out = append(out, s)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

func detectFormat(s string) string {
	if s == "" {
		return ""
	}
	for _, format := range inferredFormats {
		if gojsonschema.FormatCheckers.IsFormat(format, s) {
			return format
		}
	}
	return ""
}
