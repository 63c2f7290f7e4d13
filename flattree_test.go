package flattree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flattree/blobstore"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/persistence"
	"github.com/hupe1980/flattree/testutil"
	"github.com/hupe1980/flattree/tree"
)

var kind = element.Scalar[int64]{}

func wide(n int) *tree.Node[int64] {
	root := tree.New[int64](0)
	for i := 1; i <= n; i++ {
		root.Add(int64(i))
	}
	return root
}

func TestEncode_Variants(t *testing.T) {
	root := testutil.ExampleTree()

	for _, v := range []core.Variant{core.VariantFixedSlot, core.VariantBitmap, core.VariantCompact} {
		t.Run(v.String(), func(t *testing.T) {
			enc, err := EncodeNode(root, -1, kind, WithVariant(v))
			require.NoError(t, err)

			assert.Equal(t, v, enc.Variant())
			assert.Equal(t, uint64(2), enc.MaxChildren())
			assert.Equal(t, 8, enc.NodeCount())
			assert.True(t, root.Equal(enc.Decode()))

			children, ok := enc.ChildrenByPath([]int64{0, 2})
			require.True(t, ok)
			assert.Equal(t, []int64{5, 6}, children)

			_, ok = enc.ChildrenByPath([]int64{0, 9})
			assert.False(t, ok)
		})
	}
}

func TestEncode_AutoVariant(t *testing.T) {
	tests := []struct {
		name      string
		root      *tree.Node[int64]
		threshold uint64
		want      core.Variant
	}{
		{"narrow", testutil.ExampleTree(), DefaultBitmapThreshold, core.VariantFixedSlot},
		{"wide", wide(10), DefaultBitmapThreshold, core.VariantBitmap},
		{"just below", wide(9), DefaultBitmapThreshold, core.VariantFixedSlot},
		{"custom threshold", testutil.ExampleTree(), 2, core.VariantBitmap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeNode(tt.root, -1, kind, WithBitmapThreshold(tt.threshold))
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Variant())
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := EncodeNode(testutil.ExampleTree(), 3, kind, WithVariant(core.VariantFixedSlot))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSentinelCollision)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "sentinel", ce.Field)

	_, err = EncodeNode(testutil.ExampleTree(), -1, kind, WithVariant(core.Variant(42)))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "variant", ce.Field)
}

func TestEncode_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	root := testutil.ExampleTree()

	enc, err := EncodeNode(root, -1, kind, WithMetricsCollector(metrics), WithLogger(nil))
	require.NoError(t, err)

	_, ok := Query(context.Background(), enc, []int64{0, 1}, WithMetricsCollector(metrics))
	assert.True(t, ok)
	_, ok = Query(context.Background(), enc, []int64{5}, WithMetricsCollector(metrics))
	assert.False(t, ok)

	assert.True(t, root.Equal(Decode(enc, WithMetricsCollector(metrics))))

	_, err = EncodeNode(root, 0, kind, WithVariant(core.VariantFixedSlot), WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.EncodeCount)
	assert.Equal(t, int64(1), stats.EncodeErrors)
	assert.Equal(t, int64(8), stats.EncodeNodes)
	assert.Equal(t, int64(2), stats.QueryCount)
	assert.Equal(t, int64(1), stats.QueryMisses)
	assert.Equal(t, int64(1), stats.DecodeCount)
}

func TestEncodeAll(t *testing.T) {
	rng := testutil.NewRNG(7)

	roots := make([]*tree.Node[int64], 20)
	sources := make([]tree.Source[*tree.Node[int64], int64], len(roots))
	for i := range roots {
		roots[i] = rng.Tree(testutil.TreeShape{Nodes: 1 + i*5, MaxFanout: 1 + i, ValueRange: 50})
		sources[i] = tree.FromNode(roots[i])
	}

	encs, err := EncodeAll(context.Background(), sources, -1, kind, WithConcurrency(4))
	require.NoError(t, err)
	require.Len(t, encs, len(roots))

	for i, enc := range encs {
		assert.True(t, roots[i].Equal(enc.Decode()), "tree %d", i)
		want := ChooseVariant(uint64(tree.MaxChildren(sources[i])), DefaultBitmapThreshold)
		assert.Equal(t, want, enc.Variant(), "tree %d", i)
	}
}

func TestEncodeAll_Error(t *testing.T) {
	sources := []tree.Source[*tree.Node[int64], int64]{
		tree.FromNode(testutil.ExampleTree()),
		tree.FromNode(tree.New[int64](-1)),
	}

	_, err := EncodeAll(context.Background(), sources, -1, kind, WithVariant(core.VariantFixedSlot))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSentinelCollision)
	assert.Contains(t, err.Error(), "tree 1")
}

func TestEncodeAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []tree.Source[*tree.Node[int64], int64]{tree.FromNode(testutil.ExampleTree())}
	_, err := EncodeAll(ctx, sources, -1, kind)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	root := testutil.ExampleTree()

	stores := map[string]blobstore.BlobStore{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}

	for storeName, store := range stores {
		for _, v := range []core.Variant{core.VariantFixedSlot, core.VariantBitmap, core.VariantCompact} {
			for _, c := range []persistence.Compression{persistence.CompressionNone, persistence.CompressionLZ4, persistence.CompressionZSTD} {
				t.Run(storeName+"/"+v.String()+"/"+c.String(), func(t *testing.T) {
					enc, err := EncodeNode(root, -1, kind, WithVariant(v))
					require.NoError(t, err)

					name := "trees/" + v.String() + "-" + c.String() + ".flt"
					require.NoError(t, Save(ctx, store, name, enc, WithCompression(c)))

					loaded, err := Load(ctx, store, name, kind)
					require.NoError(t, err)
					assert.Equal(t, v, loaded.Variant())
					assert.True(t, root.Equal(loaded.Decode()))

					children, ok := loaded.ChildrenByPath([]int64{0, 2, 6})
					require.True(t, ok)
					assert.Equal(t, []int64{7}, children)

					info, err := Stat(ctx, store, name)
					require.NoError(t, err)
					assert.Equal(t, v, info.Variant)
					assert.Equal(t, name, info.Name)
					assert.Positive(t, info.Size)
				})
			}
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "missing.flt", kind, WithMetricsCollector(metrics))
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
	assert.Equal(t, int64(1), metrics.GetStats().LoadErrors)
}

func TestUnmarshal_Corrupt(t *testing.T) {
	enc, err := EncodeNode(testutil.ExampleTree(), -1, kind)
	require.NoError(t, err)

	data, err := Marshal(enc)
	require.NoError(t, err)

	data[len(data)-1] ^= 0xff
	_, err = Unmarshal(data, kind)
	assert.True(t, persistence.IsChecksumMismatch(err))

	_, err = Unmarshal([]byte("not a tree"), kind)
	assert.Error(t, err)
}

func TestUnmarshal_PairElements(t *testing.T) {
	type P = element.Pair[int32, int32]
	pk := element.PairKind[int32, int32]{}

	root := tree.New(element.MakePair[int32, int32](0, 0))
	a := root.Add(element.MakePair[int32, int32](1, 10))
	a.Add(element.MakePair[int32, int32](2, 20))
	root.Add(element.MakePair[int32, int32](3, 30))

	sentinel := element.MakePair[int32, int32](-1, -1)
	enc, err := EncodeNode[P](root, sentinel, pk, WithVariant(core.VariantFixedSlot))
	require.NoError(t, err)

	data, err := Marshal(enc)
	require.NoError(t, err)

	loaded, err := Unmarshal(data, pk)
	require.NoError(t, err)
	assert.True(t, root.Equal(loaded.Decode()))
}
