package soap

// SearchQuery selects bugs by any combination of criteria. Every field is
// optional; zero-valued fields are omitted from the request entirely.
type SearchQuery struct {
	// Package restricts the search to bugs filed against a binary package.
	Package string
	// BugIDs restricts the search to an explicit set of bugs.
	BugIDs []BugID
	// Submitter matches the address that filed the bug.
	Submitter string
	// Maintainer matches the package maintainer's address.
	Maintainer string
	// Source restricts the search to bugs against a source package.
	Source string
	// Severity matches the bug severity ("serious", "wishlist", ...).
	Severity string
	// Status matches the bug's resolution state.
	Status BugStatus
	// Owner matches the address the bug is owned by.
	Owner string
	// Correspondent matches any address that mailed the bug.
	Correspondent string
	// Archive selects archived bugs, unarchived bugs, or both.
	Archive ArchiveState
	// Tags matches bugs carrying any of the given tags.
	Tags []string
}

// Empty reports whether no criteria are set. The server treats a search
// without criteria as an error, so callers should reject empty queries up
// front.
func (q *SearchQuery) Empty() bool {
	return len(q.args()) == 0
}

// args serializes the query as name/value argument pairs. Fields are emitted
// in a fixed order; the wire name of a field is part of the server's calling
// convention and does not always match the field name (maintainer is "maint",
// source is "src").
func (q *SearchQuery) args() []Arg {
	var args []Arg

	if q.Package != "" {
		args = append(args, StringArg("package"), StringArg(q.Package))
	}
	if len(q.BugIDs) > 0 {
		args = append(args, StringArg("bugs"), BugListArg(q.BugIDs))
	}
	if q.Submitter != "" {
		args = append(args, StringArg("submitter"), StringArg(q.Submitter))
	}
	if q.Maintainer != "" {
		args = append(args, StringArg("maint"), StringArg(q.Maintainer))
	}
	if q.Source != "" {
		args = append(args, StringArg("src"), StringArg(q.Source))
	}
	if q.Severity != "" {
		args = append(args, StringArg("severity"), StringArg(q.Severity))
	}
	if q.Status != "" {
		args = append(args, StringArg("status"), StringArg(string(q.Status)))
	}
	if q.Owner != "" {
		args = append(args, StringArg("owner"), StringArg(q.Owner))
	}
	if q.Correspondent != "" {
		args = append(args, StringArg("correspondent"), StringArg(q.Correspondent))
	}
	if q.Archive != "" {
		args = append(args, StringArg("archive"), StringArg(string(q.Archive)))
	}
	if len(q.Tags) > 0 {
		args = append(args, StringArg("tag"), StringListArg(q.Tags))
	}

	return args
}
