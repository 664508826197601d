package gen

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/syssam/catalogen/schema"
)

func benchMatrix(n int) *schema.CatalogMatrix {
	defs := make([]*schema.CatalogDefinition, n)
	for i := range defs {
		def := twoValueDefinition()
		def.ClassName = fmt.Sprintf("BenchCatalog%d", i)
		defs[i] = def
	}
	return testMatrix(defs...)
}

func BenchmarkGenerator_Format(b *testing.B) {
	g, err := NewGenerator()
	require.NoError(b, err)
	m := benchMatrix(64)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := g.Format(ctx, m)
		require.NoError(b, err)
	}
}

func BenchmarkWriter_Write(b *testing.B) {
	g, err := NewGenerator()
	require.NoError(b, err)
	resources, err := g.Format(context.Background(), benchMatrix(64))
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := NewWriter(memfs.New())
		require.NoError(b, w.Write(context.Background(), resources))
	}
}
