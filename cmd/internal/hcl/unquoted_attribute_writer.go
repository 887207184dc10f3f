package hcl

import (
	"strings"

	"github.com/hashicorp/hcl2/hcl"
	"github.com/hashicorp/hcl2/hclwrite"
)

// WriteUnquotedAttribute uses the example from https://github.com/hashicorp/hcl/issues/442
// to add an unquoted attribute to a block
func WriteUnquotedAttribute(block *hclwrite.Block, attrName string, attrValue string) {
	block.Body().SetAttributeTraversal(attrName, hcl.Traversal{
		hcl.TraverseRoot{Name: attrValue},
	})
}

// WriteDependsOn writes a depends_on attribute listing the resource addresses. Nothing is written
// when there are no addresses.
func WriteDependsOn(block *hclwrite.Block, addresses []string) {
	if len(addresses) == 0 {
		return
	}

	WriteUnquotedAttribute(block, "depends_on", "["+strings.Join(addresses, ", ")+"]")
}

// WriteProvider writes the provider meta-argument, e.g. provider = aws.networking. The provider address
// may be passed with or without the "provider." prefix used by graph addresses.
func WriteProvider(block *hclwrite.Block, provider string) {
	if provider == "" {
		return
	}

	WriteUnquotedAttribute(block, "provider", strings.TrimPrefix(provider, "provider."))
}
