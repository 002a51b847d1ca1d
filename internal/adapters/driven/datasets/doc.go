// Package datasets groups the readers for the external essay-scoring
// corpora the preprocess command accepts. Each subpackage implements the
// DatasetReader port for one corpus layout.
package datasets
