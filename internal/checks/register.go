package checks

import "github.com/thanujayalath/checkstyle/internal/registry"

// Register adds every built-in check to r.
func Register(r *registry.Registry) {
	r.RegisterCheck(MemberNameTypeName, newNameFactory(MemberNameTypeName, DefaultMemberNameFormat, NewMemberName))
	r.RegisterCheck(ConstantNameTypeName, newNameFactory(ConstantNameTypeName, DefaultConstantNameFormat, NewConstantName))
	r.RegisterCheck(ParameterNumberTypeName, newParameterNumber)
	r.RegisterCheck(FileLengthTypeName, newFileLength)
	r.RegisterCheck(IllegalCatchTypeName, newIllegalCatch)
	r.RegisterCheck(UncommentedMainTypeName, newUncommentedMain)
	r.RegisterCheck(JavadocTypeTypeName, newJavadocType)
}
