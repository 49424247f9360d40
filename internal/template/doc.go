// Package template projects listing records into bulk-template rows.
//
// The projection is a fixed table of column name to pure extraction rule.
// Building a row walks the schema registry in column order: columns with a
// rule take the rule's value, everything else emits the registry's default
// literal. Adding a template column is a registry change plus, at most, one
// rule entry here.
//
// The generated listing title and HTML description live here too, since they
// exist only as cell values of the projected row.
package template
