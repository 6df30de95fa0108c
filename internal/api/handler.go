package api

import (
	"resume-extract/internal/extract"
	"resume-extract/internal/ingest"
	"resume-extract/internal/storage"
)

type API struct {
	store     *storage.DB // nil disables persistence
	extractor *extract.Extractor
	parser    *ingest.Parser
	saveQueue chan saveJob // background queue for async result persistence
}

func NewAPI(store *storage.DB, extractor *extract.Extractor, parser *ingest.Parser) *API {
	api := &API{
		store:     store,
		extractor: extractor,
		parser:    parser,
		saveQueue: make(chan saveJob, 100), // buffer for 100 pending saves
	}

	api.StartBackgroundWorkers()

	return api
}
