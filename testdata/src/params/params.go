package params

func two(a, b int) {}

func three(a, b, c int) {} // want `More than 2 parameters \(found 3\). \(parameternumber\)`

//checkstyle:suppress paramnum
func aliased(a, b, c int) {}

//checkstyle:suppress parameternumber
func byDefaultName(a, b, c int) {}

type receiver struct{}

func (receiver) method(a, b, c int) {} // want `More than 2 parameters`
