package jobs

import (
	"log"

	"grocery.GO/config"
	"grocery.GO/cron"
	catalogueService "grocery.GO/service/catalogue"
)

func init() {
	cron.Register("cataloguerefresh", "0 4 * * *", CatalogueRefreshJob)
}

// CatalogueRefreshJob regenerates every store's catalogue overnight so shelf
// prices drift from day to day.
func CatalogueRefreshJob(args ...string) {
	if err := config.LoadReferenceData(); err != nil {
		log.Printf("cataloguerefresh: reference data: %v", err)
		return
	}
	db, err := config.NewDB()
	if err != nil {
		log.Printf("cataloguerefresh: db: %v", err)
		return
	}
	catalogues, err := catalogueService.RegenerateAll(db, 0)
	if err != nil {
		log.Printf("cataloguerefresh: %v", err)
		return
	}
	log.Printf("cataloguerefresh: regenerated %d catalogues", len(catalogues))
}
