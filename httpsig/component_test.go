package httpsig

import (
	"testing"

	"github.com/go-httpsig/httpsig/sfv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentCanonicalName(t *testing.T) {
	c, err := NewFieldComponent("Example-Dict", WithDictKey("a"))
	require.NoError(t, err)
	assert.Equal(t, `"example-dict";key="a"`, c.CanonicalName())

	m, err := NewDerivedComponent(Method, WithReq())
	require.NoError(t, err)
	assert.Equal(t, `"@method";req`, m.CanonicalName())

	qp, err := NewDerivedComponent(QueryParam, WithQueryParamName("dog"))
	require.NoError(t, err)
	assert.Equal(t, `"@query-param";name="dog"`, qp.CanonicalName())
}

func TestComponentSfAndKeyMutuallyExclusive(t *testing.T) {
	_, err := NewFieldComponent("x", WithStructuredField(), WithDictKey("a"))
	require.Error(t, err)

	_, err = NewFieldComponent("x", WithDictKey("a"), WithStructuredField())
	require.Error(t, err)
}

func TestDerivedComponentRejectsFieldOnlyFlags(t *testing.T) {
	_, err := NewDerivedComponent(Method, WithStructuredField())
	require.Error(t, err)

	_, err = NewDerivedComponent(Method, WithDictKey("a"))
	require.Error(t, err)
}

func TestQueryParamRequiresName(t *testing.T) {
	_, err := NewDerivedComponent(QueryParam)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, MissingQueryParam, kind)
}

func TestOnlyQueryParamAcceptsName(t *testing.T) {
	_, err := NewDerivedComponent(Method, WithQueryParamName("x"))
	require.Error(t, err)
}

func TestFieldComponentNameLowercased(t *testing.T) {
	c, err := NewFieldComponent("X-Custom-Header")
	require.NoError(t, err)
	assert.Equal(t, "x-custom-header", c.Name())
}

func TestComponentFromItemRoundTrip(t *testing.T) {
	orig, err := NewFieldComponent("content-digest", WithBinaryWrap(), WithTrailer())
	require.NoError(t, err)

	reconstructed, err := componentFromItem(orig.descriptorItem())
	require.NoError(t, err)
	assert.True(t, orig.Equal(reconstructed))
}

func TestComponentFromItemRejectsUnknownParam(t *testing.T) {
	c, err := NewFieldComponent("content-digest")
	require.NoError(t, err)
	it := c.descriptorItem()
	it.Params.Set("bogus", sfv.BooleanItem(true))

	_, err = componentFromItem(it)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, InvalidStructuredHeader, kind)
}
