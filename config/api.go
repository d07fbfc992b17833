package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public read-only catalogue data, no auth
	return []string{"/api/stores", "/api/ingredients"}
}
