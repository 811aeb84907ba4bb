package xsqlsanitizer

// StatementInfo is the sanitized form of one statement together with the
// metadata used to tag telemetry. An empty Operation or Table means none was
// found. StatementInfo is comparable and can be used as a map key.
type StatementInfo struct {
	FullStatement string
	Operation     string
	Table         string
}

func (s StatementInfo) String() string {
	return "StatementInfo{operation='" + s.Operation + "', table='" + s.Table + "'}"
}
