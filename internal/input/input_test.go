package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	keys := map[glfw.Key]Action{
		glfw.KeyW:      ActionMoveForward,
		glfw.KeyS:      ActionMoveBackward,
		glfw.KeyA:      ActionMoveLeft,
		glfw.KeyD:      ActionMoveRight,
		glfw.KeyQ:      ActionMoveUp,
		glfw.KeyE:      ActionMoveDown,
		glfw.KeyEscape: ActionQuit,
	}
	for key, action := range keys {
		im := NewInputManager()
		im.HandleKeyEvent(key, glfw.Press)
		assert.True(t, im.IsActive(action), "%s should be active", action)
	}
}

func TestEdgeFlags(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, im.JustPressed(ActionQuit))
	assert.True(t, im.IsActive(ActionQuit))

	im.PostUpdate()
	assert.False(t, im.JustPressed(ActionQuit))
	assert.True(t, im.IsActive(ActionQuit), "held key stays active across frames")

	// Repeat does not re-trigger the edge
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionQuit))

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	assert.True(t, im.JustReleased(ActionQuit))
	assert.False(t, im.IsActive(ActionQuit))
}

func TestBindAndUnbind(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	assert.True(t, im.IsActive(ActionMoveForward))
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)

	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.False(t, im.IsActive(ActionMoveForward))
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyZ, ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)

	assert.False(t, im.IsActive(ActionCount))
	assert.False(t, im.JustPressed(-1))
	assert.Equal(t, "unknown", ActionCount.String())
}
