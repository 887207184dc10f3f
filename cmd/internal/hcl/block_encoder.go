package hcl

import (
	"regexp"
	"sync"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/hashicorp/hcl2/gohcl"
	"github.com/hashicorp/hcl2/hclwrite"
)

// nullAttribute matches a whole attribute line whose value is null. gohcl writes nil slices and maps this way.
var nullAttribute = regexp.MustCompile(`(?m)^[ \t]*[A-Za-z0-9_]+[ \t]*=[ \t]*null[ \t]*\r?\n`)

// hclwrite formats tokens using a package level placeholder token, so encoding and formatting are serialized
// to let components render concurrently.
var formatMutex sync.Mutex

// EncodeOutput encodes an output block whose value is the expression. The expression is written unquoted
// so maps and traversals are preserved.
func EncodeOutput(output terraform.TerraformOutput, expression string) *hclwrite.Block {
	formatMutex.Lock()
	defer formatMutex.Unlock()

	block := gohcl.EncodeAsBlock(output, "output")
	WriteUnquotedAttribute(block, "value", expression)
	return block
}

// EncodeBlock encodes any tagged struct as a block of the given type, followed by the provider and
// depends_on meta-arguments.
func EncodeBlock(value any, blockType string, provider string, dependsOn []string) *hclwrite.Block {
	formatMutex.Lock()
	defer formatMutex.Unlock()

	block := gohcl.EncodeAsBlock(value, blockType)
	WriteProvider(block, provider)
	WriteDependsOn(block, dependsOn)
	return block
}

// BlockToString renders a single block, optionally preceded by comment tokens. Attributes with a null value
// are left out, so unset optional lists and maps are not written.
func BlockToString(block *hclwrite.Block, comments []*hclwrite.Token) string {
	formatMutex.Lock()
	defer formatMutex.Unlock()

	file := hclwrite.NewEmptyFile()
	if len(comments) != 0 {
		file.Body().AppendUnstructuredTokens(comments)
	}
	file.Body().AppendBlock(block)

	rendered := file.Bytes()
	if !nullAttribute.Match(rendered) {
		return string(rendered)
	}

	// the removed attribute may have set the alignment of its neighbours
	return string(hclwrite.Format(nullAttribute.ReplaceAll(rendered, nil)))
}
