// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/zplane"
)

// Driver is the part of Ebitengine the Game talks to. It is an interface
// so input can be scripted without a window.
type Driver interface {
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	IsKeyJustPressed(k ebiten.Key) bool
	IsKeyJustReleased(k ebiten.Key) bool
	SetCursorVisible(visible bool)
}

// ebitenDriver forwards to ebiten and inpututil.
type ebitenDriver struct{}

func (ebitenDriver) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenDriver) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenDriver) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenDriver) IsKeyJustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenDriver) IsKeyJustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

func (ebitenDriver) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// keyBindings maps physical keys to session keys.
var keyBindings = []struct {
	key ebiten.Key
	to  zplane.Key
}{
	{ebiten.KeyC, zplane.KeyClear},
	{ebiten.KeyEscape, zplane.KeyClear},
	{ebiten.KeyP, zplane.KeyToggleDerivative},
	{ebiten.KeyW, zplane.KeyMoveUp},
	{ebiten.KeyS, zplane.KeyMoveDown},
	{ebiten.KeyA, zplane.KeyMoveLeft},
	{ebiten.KeyD, zplane.KeyMoveRight},
}

// buttonBindings maps mouse buttons to session buttons.
var buttonBindings = []struct {
	button ebiten.MouseButton
	to     zplane.Button
}{
	{ebiten.MouseButtonLeft, zplane.ButtonLeft},
	{ebiten.MouseButtonRight, zplane.ButtonRight},
	{ebiten.MouseButtonMiddle, zplane.ButtonMiddle},
}

// quitKey ends the game loop.
const quitKey = ebiten.KeyQ
