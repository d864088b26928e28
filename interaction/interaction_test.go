package interaction_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intergen/interaction"
	"github.com/katalvlaran/intergen/probas"
)

const signatureYAML = `
lifelines: [client, server, log]
messages: [req, resp]
`

func mustContext(t *testing.T) *interaction.Context {
	t.Helper()
	ctx, err := interaction.ParseContext([]byte(signatureYAML))
	require.NoError(t, err)
	return ctx
}

func TestParseContext(t *testing.T) {
	ctx := mustContext(t)
	assert.Equal(t, []string{"client", "server", "log"}, ctx.Lifelines)
	assert.Equal(t, []string{"req", "resp"}, ctx.Messages)
	assert.Equal(t, "server", ctx.LifelineName(1))
	assert.Equal(t, "?", ctx.LifelineName(7))
	assert.Equal(t, "resp", ctx.MessageName(1))
	assert.Equal(t, "?", ctx.MessageName(-1))
}

func TestParseContextRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty document":     ``,
		"not yaml":           "lifelines: [a\n",
		"missing messages":   "lifelines: [a]\n",
		"no lifelines":       "lifelines: []\nmessages: [m]\n",
		"duplicate lifeline": "lifelines: [a, a]\nmessages: [m]\n",
		"bad identifier":     "lifelines: [\"a b\"]\nmessages: [m]\n",
		"extra key":          "lifelines: [a]\nmessages: [m]\ngates: [g]\n",
		"numeric item":       "lifelines: [1]\nmessages: [m]\n",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := interaction.ParseContext([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, interaction.ErrInvalidContext))
		})
	}
}

func TestLoadContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(signatureYAML), 0o644))

	ctx, err := interaction.LoadContext(path)
	require.NoError(t, err)
	assert.Len(t, ctx.Lifelines, 3)

	_, err = interaction.LoadContext(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, interaction.ErrInvalidContext))
}

func TestEqualAndHash(t *testing.T) {
	a := interaction.NewBinary(interaction.KindStrict, interaction.NewEmission(0, 1), interaction.NewReception(1, 1))
	b := interaction.NewBinary(interaction.KindStrict, interaction.NewEmission(0, 1), interaction.NewReception(1, 1))
	c := interaction.NewBinary(interaction.KindSeq, interaction.NewEmission(0, 1), interaction.NewReception(1, 1))
	d := interaction.NewBinary(interaction.KindStrict, interaction.NewEmission(0, 0), interaction.NewReception(1, 1))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, "strict(e(0,1),r(1,1))", a.Canonical())
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.NotEqual(t, a.Canonical(), c.Canonical())
	assert.False(t, a.Equal(nil))

	x := interaction.NewCoReg([]int{2, 0, 2}, interaction.NewEmpty(), interaction.NewEmpty())
	y := interaction.NewCoReg([]int{0, 2}, interaction.NewEmpty(), interaction.NewEmpty())
	z := interaction.NewCoReg([]int{0}, interaction.NewEmpty(), interaction.NewEmpty())
	assert.Equal(t, []int{0, 2}, x.CoReg)
	assert.True(t, x.Equal(y))
	assert.False(t, x.Equal(z))
	assert.Equal(t, "coreg[0,2](o,o)", x.Canonical())
}

func TestConstructorsRejectWrongKinds(t *testing.T) {
	assert.Nil(t, interaction.NewBinary(interaction.KindLoopWeak, nil, nil))
	assert.Nil(t, interaction.NewBinary(interaction.KindCoReg, nil, nil))
	assert.Nil(t, interaction.NewLoop(interaction.KindPar, nil))
}

func TestSymbolsAndDepth(t *testing.T) {
	i := interaction.NewLoop(interaction.KindLoopStrict,
		interaction.NewBinary(interaction.KindPar, interaction.NewEmpty(), interaction.NewEmission(0, 0)))
	assert.Equal(t, 4, i.Symbols())
	assert.Equal(t, 2, i.Depth())
	assert.Equal(t, 1, interaction.NewEmpty().Symbols())
	assert.Equal(t, 0, interaction.NewEmpty().Depth())
}

func TestEncode(t *testing.T) {
	ctx := mustContext(t)
	i := interaction.NewCoReg([]int{0, 1},
		interaction.NewEmission(0, 0),
		interaction.NewLoop(interaction.KindLoopWeak, interaction.NewReception(1, 1)))

	want := "coreg(client,server)(\n" +
		"\tclient -- req ->|,\n" +
		"\tloopW(\n" +
		"\t\tresp -> server\n" +
		"\t)\n" +
		")\n"
	assert.Equal(t, want, string(interaction.Encode(ctx, i)))
	assert.Equal(t, "o\n", string(interaction.Encode(ctx, interaction.NewEmpty())))
}

func TestNewGeneratorNeedsSignature(t *testing.T) {
	_, err := interaction.NewGenerator(&interaction.Context{Lifelines: []string{"a"}})
	assert.True(t, errors.Is(err, interaction.ErrEmptyContext))
	_, err = interaction.NewGenerator(nil)
	assert.True(t, errors.Is(err, interaction.ErrEmptyContext))
}

func TestGenerateActionOnly(t *testing.T) {
	ctx := mustContext(t)
	g, err := interaction.NewGenerator(ctx)
	require.NoError(t, err)
	p, err := probas.FromExplicit(probas.Weights{Action: 1})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(3))
	for k := 0; k < 20; k++ {
		i, ok := g.Generate(r, 5, 1, p)
		require.True(t, ok)
		assert.Equal(t, interaction.KindEmission, i.Kind)
		assert.Less(t, i.Lifeline, 3)
		assert.Less(t, i.Message, 2)
	}

	// A single action never reaches two symbols.
	_, ok := g.Generate(r, 5, 2, p)
	assert.False(t, ok)
}

func TestGenerateRespectsDepthAndSize(t *testing.T) {
	ctx := mustContext(t)
	g, err := interaction.NewGenerator(ctx)
	require.NoError(t, err)
	p := probas.Default()

	r := rand.New(rand.NewSource(11))
	produced := 0
	for k := 0; k < 500; k++ {
		i, ok := g.Generate(r, 4, 3, p)
		if !ok {
			continue
		}
		produced++
		assert.GreaterOrEqual(t, i.Symbols(), 3)
		// Terminal transmissions/broadcasts add at most two levels below maxDepth.
		assert.LessOrEqual(t, i.Depth(), 4+2)
	}
	assert.Positive(t, produced)
}

func TestGenerateFailsWithoutTerminalMass(t *testing.T) {
	ctx := mustContext(t)
	g, err := interaction.NewGenerator(ctx)
	require.NoError(t, err)
	p, err := probas.FromExplicit(probas.Weights{Strict: 1})
	require.NoError(t, err)

	_, ok := g.Generate(rand.New(rand.NewSource(1)), 3, 1, p)
	assert.False(t, ok)
}

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := mustContext(t)
	g, err := interaction.NewGenerator(ctx)
	require.NoError(t, err)
	p, err := probas.FromPreset(probas.PresetProtocolsWithCoReg)
	require.NoError(t, err)

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for k := 0; k < 100; k++ {
		x, okx := g.Generate(a, 5, 1, p)
		y, oky := g.Generate(b, 5, 1, p)
		require.Equal(t, okx, oky)
		if okx {
			require.True(t, x.Equal(y))
		}
	}
}

func TestBroadcastReachesOtherLifelines(t *testing.T) {
	ctx := mustContext(t)
	g, err := interaction.NewGenerator(ctx)
	require.NoError(t, err)
	p, err := probas.FromExplicit(probas.Weights{Broadcast: 1})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(5))
	for k := 0; k < 30; k++ {
		i, ok := g.Generate(r, 1, 1, p)
		require.True(t, ok)
		require.Equal(t, interaction.KindStrict, i.Kind)
		emission := i.Children[0]
		assert.Equal(t, interaction.KindEmission, emission.Kind)
		var walk func(*interaction.Interaction)
		walk = func(n *interaction.Interaction) {
			if n.Kind == interaction.KindReception {
				assert.NotEqual(t, emission.Lifeline, n.Lifeline)
				assert.Equal(t, emission.Message, n.Message)
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(i.Children[1])
	}
}
