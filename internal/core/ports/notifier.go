package ports

// Resource tags carried by change notifications. Clients treat a tag as
// "refetch this resource"; no payload travels with it.
const (
	ResourceUsers         = "users"
	ResourceAcademicYears = "academic_years"
	ResourceGroups        = "groups"
	ResourceStudents      = "students"
	ResourceCompanies     = "companies"
	ResourceActivities    = "activities"
)

// Notifier fans a resource-change signal out to every connected client.
// Delivery is best-effort: at most once per live connection, no replay
// for late joiners.
type Notifier interface {
	Broadcast(resource string)
}
