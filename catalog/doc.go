// Package catalog provides the product catalog searched by the service.
//
// The built-in sample holds 26 products across four categories. A YAML
// file can replace it at startup; either way the catalog is immutable
// for the life of the process and its order defines the positional
// correspondence between products and their embeddings.
package catalog
