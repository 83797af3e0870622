package app

const (
	// DefaultMaxResults is used when the request leaves the target
	// unset.
	DefaultMaxResults = 20

	// MaxResultsCap bounds a single run. More than this in one sitting
	// draws blocks faster than it draws leads.
	MaxResultsCap = 100

	// DefaultPerQueryLimit caps how many candidates one query may
	// contribute.
	DefaultPerQueryLimit = 20
)

// Industries offered by the front-ends. Selection is recorded with the
// export but does not narrow the search.
var Industries = []string{
	"All Industries",
	"Technology",
	"Finance",
	"Healthcare",
	"Marketing & Advertising",
	"Manufacturing",
	"Retail",
	"Education",
}
