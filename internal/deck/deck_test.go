package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Structure(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	require.Len(t, d.Slides, Count)

	assert.Equal(t, "Pipeline ML", d.Brand)
	assert.Equal(t, "AWS SageMaker", d.Product)
	assert.Equal(t, "Tela Cheia", d.Labels.FullscreenEnter)
	assert.Equal(t, "Sair", d.Labels.FullscreenExit)

	wantKinds := []Kind{KindPipeline, KindPipeline, KindPipeline, KindPipeline, KindServices, KindSteps}
	for i, s := range d.Slides {
		assert.Equal(t, SlideID(i), s.ID, "slide %d id", i)
		assert.Equal(t, wantKinds[i], s.Kind, "slide %d kind", i)
	}
}

func TestDefault_SameValue(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDefault_PipelineContent(t *testing.T) {
	d := Default()

	ingestion := d.Slide(int(Ingestion))
	require.Len(t, ingestion.Layers, 3)
	assert.Len(t, ingestion.Layers[0].Nodes, 3)
	assert.Equal(t, "ERP Protheus", ingestion.Layers[0].Nodes[0].Title)
	assert.Equal(t, VariantExternal, ingestion.Layers[0].Nodes[0].Variant)
	require.NotNil(t, ingestion.Layers[0].Connector)
	assert.Equal(t, "Ingestão automatizada", ingestion.Layers[0].Connector.Label)
	assert.Nil(t, ingestion.Layers[2].Connector, "last layer has no connector")

	// The first inference arrow has no caption.
	inference := d.Slide(int(Inference))
	require.Len(t, inference.Layers, 5)
	require.NotNil(t, inference.Layers[0].Connector)
	assert.Empty(t, inference.Layers[0].Connector.Label)
	assert.Equal(t, VariantAthena, inference.Layers[4].Nodes[0].Variant)
}

func TestDefault_ServicesAndSteps(t *testing.T) {
	d := Default()

	services := d.Slide(int(Dictionary)).Services
	require.Len(t, services, 6)
	assert.Equal(t, "Amazon EventBridge", services[5].Title)
	assert.True(t, strings.HasPrefix(services[0].Description, "Plataforma completa"))

	steps := d.Slide(int(Flow)).Steps
	require.Len(t, steps, 5)
	for i, st := range steps {
		assert.Equal(t, string(rune('1'+i)), st.Number)
	}
}

func TestDeck_SlideFallback(t *testing.T) {
	d := Default()
	for _, i := range []int{-1, Count, 99} {
		assert.Equal(t, Ingestion, d.Slide(i).ID, "index %d", i)
	}
	assert.Equal(t, Flow, d.Slide(int(Flow)).ID)
}

func TestSlideID_String(t *testing.T) {
	assert.Equal(t, "Ingestion", Ingestion.String())
	assert.Equal(t, "Flow", Flow.String())
	assert.Equal(t, "Unknown", SlideID(6).String())
	assert.True(t, Dictionary.Valid())
	assert.False(t, SlideID(-1).Valid())
	assert.False(t, SlideID(Count).Valid())
}

func TestVariant_Known(t *testing.T) {
	for _, v := range []Variant{VariantAWS, VariantExternal, VariantSageMaker, VariantS3, VariantAthena, VariantDMS} {
		assert.True(t, v.Known(), string(v))
	}
	assert.False(t, Variant("lambda").Known())
	assert.False(t, Variant("").Known())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no slides", "brand: x\n"},
		{"bad yaml", "slides: [\n"},
		{"wrong id", strings.Replace(string(embeddedDeck), "  - id: 1\n", "  - id: 7\n", 1)},
		{"unknown kind", strings.Replace(string(embeddedDeck), "kind: steps", "kind: video", 1)},
		{"missing benefit", strings.Replace(string(embeddedDeck),
			"      - { icon: download, title: Processamento Rápido, text: Ingestão paralela de múltiplas fontes simultaneamente. }\n", "", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParse_InvalidIsSentinel(t *testing.T) {
	_, err := Parse([]byte("brand: x\n"))
	assert.ErrorIs(t, err, ErrInvalidDeck)
}

func TestLoad_RoundTripsEmbedded(t *testing.T) {
	d, err := Load(strings.NewReader(string(embeddedDeck)))
	require.NoError(t, err)
	assert.Equal(t, Default().Titles(), d.Titles())
}
