// Package types provides the shared domain types of the template library:
// template metadata records, search filters and results, and the response
// formats of the fetch operation.
//
// TemplateRecord is the parsed form of a template.json file. Validate
// enforces the metadata contract (known category and language, semantic
// version, ISO dates):
//
//	if err := rec.Validate(); err != nil {
//	    // record is rejected, not served
//	}
//
// SearchableText flattens the fields that participate in ranking (name,
// description, category, framework, language, tags) into one string shared
// by the vector and lexical paths.
package types
