package filefilter

// TestHelper is reported when -test=true (default).
type TestHelper struct {
	bad_field int // want `Name 'bad_field' must match pattern`
}
