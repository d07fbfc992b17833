package registry

// Keys for the extension registries (cmd, cron, api) stored in GlobalRegistry.
const (
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistryCron   = "registry:cron"
	KeyRegistryAPI    = "registry:api"
	KeyRegistryRoutes = "registry:routes"
)
