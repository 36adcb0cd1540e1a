package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"github.com/taigrr/genmesh/pkg/generators"
	"github.com/taigrr/genmesh/pkg/poly"
	"github.com/taigrr/genmesh/pkg/render"
)

// Viewer controls:
//
//	W/S, Up/Down    - Pitch
//	A/D, Left/Right - Yaw
//	Q/E             - Roll
//	Space           - Apply random impulse
//	R               - Reset rotation
//	+/-             - Double or halve the resolution
//	?               - Toggle HUD
//	Esc, Ctrl+C     - Quit

const (
	minSubU = 3
	maxSubU = 256
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds rotation with harmonica spring physics
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

func NewRotationState(fps int) *RotationState {
	r := &RotationState{fps: fps}
	r.Reset()
	return r
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
	r.Roll = NewRotationAxis(r.fps)
}

// Matrix returns the rotation as a transform.
func (r *RotationState) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(float32(r.Pitch.Position)).
		Mul4(mgl32.HomogRotate3DY(float32(r.Yaw.Position))).
		Mul4(mgl32.HomogRotate3DZ(float32(r.Roll.Position)))
}

// viewConfig holds the settings of one viewer session.
type viewConfig struct {
	subU, subV int
	fps        int
	line       render.Color
	background render.Color
}

func newViewCmd(flags *sphereFlags) *cobra.Command {
	var (
		fps     int
		lineRGB string
		bgRGB   string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Spin the sphere as a wireframe in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := flags.sphere(); err != nil {
				return err
			}
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}
			line, err := render.ParseRGB(lineRGB)
			if err != nil {
				return err
			}
			bg, err := render.ParseRGB(bgRGB)
			if err != nil {
				return err
			}

			return runViewer(cmd.Context(), viewConfig{
				subU:       flags.subU,
				subV:       flags.subV,
				fps:        fps,
				line:       line,
				background: bg,
			})
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "Target FPS")
	cmd.Flags().StringVar(&lineRGB, "color", "0,255,128", "Wireframe color (R,G,B)")
	cmd.Flags().StringVar(&bgRGB, "bg", "30,30,40", "Background color (R,G,B)")
	return cmd
}

// resize scales the resolution by factor, keeping v at half of u.
func resize(subU, factor int) (int, int) {
	if factor > 0 {
		subU *= factor
	} else {
		subU /= -factor
	}
	subU = max(minSubU, min(maxSubU, subU))
	return subU, max(2, subU/2)
}

func runViewer(ctx context.Context, cfg viewConfig) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	fb := render.NewTerminalFramebuffer(width, height)
	camera := render.NewCamera()
	camera.SetAspectRatio(float32(fb.Width) / float32(fb.Height))
	wire := render.NewWireframe(camera, fb)

	rotation := NewRotationState(cfg.fps)
	subU, subV := cfg.subU, cfg.subV
	showHUD := true
	hudStyle := uv.Style{Fg: render.ColorWhite, Bg: render.ColorBlack}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewTerminalFramebuffer(width, height)
				wire = render.NewWireframe(camera, fb)
				camera.SetAspectRatio(float32(fb.Width) / float32(fb.Height))

			case uv.KeyPressEvent:
				const impulse = 0.05
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					rotation.ApplyImpulse(-impulse, 0, 0)
				case ev.MatchString("s", "down"):
					rotation.ApplyImpulse(impulse, 0, 0)
				case ev.MatchString("a", "left"):
					rotation.ApplyImpulse(0, -impulse, 0)
				case ev.MatchString("d", "right"):
					rotation.ApplyImpulse(0, impulse, 0)
				case ev.MatchString("q"):
					rotation.ApplyImpulse(0, 0, -impulse)
				case ev.MatchString("e"):
					rotation.ApplyImpulse(0, 0, impulse)
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*0.5,
						(rand.Float64()-0.5)*0.5,
						(rand.Float64()-0.5)*0.5,
					)
				case ev.MatchString("r"):
					rotation.Reset()
				case ev.MatchString("+", "="):
					subU, subV = resize(subU, 2)
				case ev.MatchString("-", "_"):
					subU, subV = resize(subU, -2)
				case ev.MatchString("?", "shift+/"):
					showHUD = !showHUD
				}
			}

		case <-ticker.C:
			rotation.Update()
			transform := rotation.Matrix()

			fb.Clear(cfg.background)
			src := poly.MapVertices(generators.NewSphereUV(subU, subV), func(p mgl32.Vec3) mgl32.Vec3 {
				return mgl32.TransformCoordinate(p, transform)
			})
			polys := wire.DrawPolygons(src, cfg.line)

			fb.Draw(term, uv.Rect(0, 0, width, height))
			if showHUD {
				drawText(term, 0, 0, fmt.Sprintf(" %dx%d  %d polys ", subU, subV, polys), hudStyle)
			}
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

// drawText writes s onto the screen starting at (x, y).
func drawText(scr uv.Screen, x, y int, s string, style uv.Style) {
	for i, r := range []rune(s) {
		scr.SetCell(x+i, y, &uv.Cell{Content: string(r), Width: 1, Style: style})
	}
}
