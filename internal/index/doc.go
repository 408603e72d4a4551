// Package index ranks templates by cosine similarity between a query vector
// and per-template vectors.
//
// Vector ranking requires a configured embedding provider, because every
// query is embedded at search time. With a provider, per-template vectors
// come from the embeddings.json snapshot at the corpus root when one is
// present and loadable; otherwise they are generated at startup, in batches
// of 10 with concurrent requests inside each batch. Without a provider the
// index reports VectorsAvailable() == false, even when a snapshot exists,
// and callers fall back to lexical ranking for the whole session.
//
// A dimension mismatch between the query vector and a stored vector is a
// fatal ranking error (ErrDimensionMismatch), never a silent skip: it means
// the snapshot was built with a different model and must be regenerated with
// Rebuild.
package index
