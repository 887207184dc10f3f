package terraform

// TerraformOutput is an output block. The value is an expression, so it is written separately as an
// unquoted attribute.
type TerraformOutput struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description"`
}
