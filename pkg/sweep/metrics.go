package sweep

// Metrics accumulates counters across all stages of a run. Counters start
// at zero and only ever grow; the Reporter reads them once at run end.
type Metrics struct {
	PrereleasesDeleted int
	StaleDeleted       int
	TagsDeleted        int
	APICalls           int
	Errors             int
}

// TotalDeleted is the combined count of deleted prerelease and stale
// stable releases.
func (m *Metrics) TotalDeleted() int {
	return m.PrereleasesDeleted + m.StaleDeleted
}

// APICall implements the API client's CallObserver, counting every HTTP
// request the client issues, retries included.
func (m *Metrics) APICall(method, url string) {
	m.APICalls++
}
