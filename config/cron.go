package config

// CronJob holds a schedule and the job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs maps job names to statically configured jobs. Packages that need
// config at run time register through cron.Register instead (see cron/jobs).
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
