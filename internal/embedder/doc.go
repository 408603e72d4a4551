// Package embedder generates vector embeddings for template descriptions
// and search queries.
//
// # Provider Selection
//
// The provider is selected from the environment:
//
//  1. If LAUNCHKIT_EMBEDDING_PROVIDER is set, use that provider
//  2. Else if OPENAI_API_KEY is set, use OpenAI
//  3. Else if JINA_API_KEY is set, use Jina AI
//  4. Else NewFromEnv returns ErrNoProviderEnabled and the server runs
//     without vectors
//
// Supported providers:
//
//	openai  text-embedding-3-small, 1536 dimensions
//	jina    jina-embeddings-v3, 1024 dimensions
//
// # Usage
//
//	emb, err := embedder.NewFromEnv()
//	if err != nil {
//	    // no provider configured or key missing
//	}
//	defer emb.Close()
//
//	vec, err := emb.Embed(ctx, "NextAuth.js setup with Google sign-in")
//
// Transient API failures are retried with exponential backoff. Exhausted
// retries surface as ErrProviderFailed, which callers must propagate rather
// than silently degrade on.
//
// # Caching
//
// Both providers share an LRU cache keyed by the sha256 of the input text,
// so repeated queries in one session cost one API call.
package embedder
