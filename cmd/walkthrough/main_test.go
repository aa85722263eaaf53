package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/scene"
)

func TestWalkthroughDefaultScene(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, scene.Default(), options{
		step: 50 * time.Millisecond,
		seed: 1,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "book: Prompting -> Activated")
	assert.Contains(t, text, "offering: Prompting -> Activated")
	assert.Contains(t, text, "statue: Prompting -> Activated")
	assert.Contains(t, text, "blade: Prompting -> Activated")
	assert.Contains(t, text, `"Look inside the shrine"`)

	assert.Contains(t, text, "blade blade carried: true")
	assert.Contains(t, text, "lantern offering lit: true")
	assert.Contains(t, text, "statue statue rotating: true")
	assert.Contains(t, text, "activated.offering=true")
	assert.Contains(t, text, "burst.cherry_blossoms=1")
	assert.Contains(t, text, "events.dropped=0")
}

func TestRouteOrder(t *testing.T) {
	s, err := scene.Build(scene.Default(), scene.Deps{Controller: interact.NewController()})
	require.NoError(t, err)

	r := route(s)
	var ids []string
	for _, wp := range r {
		ids = append(ids, wp.object.ID)
	}
	assert.Equal(t, []string{"blade-display", "book", "offering", "statue", "blade"}, ids)
	assert.False(t, r[0].interact)
	assert.Equal(t, 4*time.Second, r[3].wait)
}
