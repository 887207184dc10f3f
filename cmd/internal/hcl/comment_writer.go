package hcl

import (
	"github.com/hashicorp/hcl2/hcl/hclsyntax"
	"github.com/hashicorp/hcl2/hclwrite"
)

// WriteComponentComment returns the comment placed above each block naming the landing zone component
// that owns it.
func WriteComponentComment(component string, address string) []*hclwrite.Token {
	return []*hclwrite.Token{{
		Type:         hclsyntax.TokenComment,
		Bytes:        []byte("# " + component + ": " + address + "\n"),
		SpacesBefore: 0,
	}}
}

// WriteFileHeader returns the comment written at the top of every generated file.
func WriteFileHeader(cloud string, component string) []*hclwrite.Token {
	return []*hclwrite.Token{{
		Type: hclsyntax.TokenComment,
		Bytes: []byte("# Generated by lzterra. Do not edit, changes are overwritten when the landing zone is rendered again.\n" +
			"# Cloud: " + cloud + "\n" +
			"# Component: " + component + "\n"),
		SpacesBefore: 0,
	}}
}
