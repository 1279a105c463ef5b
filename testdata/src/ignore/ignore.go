package ignore

// Config is documented.
type Config struct {
	//checkstyle:ignore membername
	bad_name   int
	other_name int //checkstyle:ignore membername - trailing form
	//checkstyle:ignore constantname // want `unused checkstyle:ignore directive for check\(s\): constantname`
	third_name int // want `Name 'third_name' must match pattern`
}

//checkstyle:ignore // want `unused checkstyle:ignore directive \(suppresswithnearbycommentfilter\)`

// Clean has nothing to ignore.
type Clean struct{}
