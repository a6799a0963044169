// Package server exposes the product search service over HTTP.
//
// Routes:
//
//	GET  /          search page
//	GET  /static/   embedded JavaScript and CSS
//	GET  /status    {"model_loaded": bool, "embeddings_loaded": bool}
//	POST /search    form field "query"; {"results": [...]} or {"error": "..."}
//
// /search answers 422 when the query is missing, 503 while the embedding
// model or catalog embeddings are unavailable and 500 for any other search
// failure. Lazy initialization happens inside the request, so the first
// /status or /search call may take as long as loading the model.
package server
