package cmd

import (
	"fmt"

	"github.com/okatz/seatsim/internal/client"
	"github.com/okatz/seatsim/internal/config"
	"github.com/spf13/cobra"
)

// The drive subcommands script a broker session from the shell, one command
// per invocation. They are mainly useful for poking a running broker while
// developing a test harness.

var driveSocketPath string

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Send a single command to a running broker",
}

func init() {
	driveCmd.PersistentFlags().StringVar(&driveSocketPath, "socket", "", "Control socket path (default from config)")

	driveCmd.AddCommand(
		createCmd("create-keyboard", "Create a virtual keyboard", func(c *client.Client) (uint32, error) {
			return c.CreateKeyboard()
		}),
		createCmd("create-mouse", "Create a virtual mouse", func(c *client.Client) (uint32, error) {
			return c.CreateMouse()
		}),
		createCmd("create-touch", "Create a virtual touchscreen", func(c *client.Client) (uint32, error) {
			return c.CreateTouch()
		}),
		keyCmd("key-press", "Press a key", func(c *client.Client, id, key uint32) error {
			return c.KeyPress(id, key)
		}),
		keyCmd("key-release", "Release a key", func(c *client.Client, id, key uint32) error {
			return c.KeyRelease(id, key)
		}),
		buttonCmd("button-press", "Press a pointer button", func(c *client.Client, id, button uint32) error {
			return c.ButtonPress(id, button)
		}),
		buttonCmd("button-release", "Release a pointer button", func(c *client.Client, id, button uint32) error {
			return c.ButtonRelease(id, button)
		}),
		deltaCmd("mouse-move", "Move the pointer by unaccelerated deltas", func(c *client.Client, id uint32, dx, dy int32) error {
			return c.MouseMove(id, dx, dy)
		}),
		deltaCmd("mouse-scroll", "Scroll by whole notches", func(c *client.Client, id uint32, dx, dy int32) error {
			return c.MouseScroll(id, dx, dy)
		}),
		touchDownCmd(),
		touchMoveCmd(),
		touchUpCmd(),
		removeDeviceCmd(),
		secondMonitorCmd(),
		videoInfoCmd(),
	)
}

// withClient dials the broker, runs fn, and closes the connection.
func withClient(fn func(*client.Client) error) error {
	socketPath := driveSocketPath
	if socketPath == "" {
		if err := config.Init(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		socketPath = config.Get().Broker.SocketPath
	}

	c, err := client.Dial(socketPath)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func createCmd(use, short string, create func(*client.Client) (uint32, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				id, err := create(c)
				if err != nil {
					return err
				}
				fmt.Printf("device id: %d\n", id)
				return nil
			})
		},
	}
}

func keyCmd(use, short string, send func(*client.Client, uint32, uint32) error) *cobra.Command {
	var id, key uint32
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return send(c, id, key)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Uint32Var(&key, "key", 0, "Zero-based logical key code")
	return cmd
}

func buttonCmd(use, short string, send func(*client.Client, uint32, uint32) error) *cobra.Command {
	var id, button uint32
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return send(c, id, button)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Uint32Var(&button, "button", 1, "Button index")
	return cmd
}

func deltaCmd(use, short string, send func(*client.Client, uint32, int32, int32) error) *cobra.Command {
	var id uint32
	var dx, dy int32
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return send(c, id, dx, dy)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Int32Var(&dx, "dx", 0, "Horizontal delta")
	cmd.Flags().Int32Var(&dy, "dy", 0, "Vertical delta")
	return cmd
}

func touchDownCmd() *cobra.Command {
	var id uint32
	var x, y int32
	cmd := &cobra.Command{
		Use:   "touch-down",
		Short: "Begin a touch contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				contact, err := c.TouchDown(id, x, y)
				if err != nil {
					return err
				}
				fmt.Printf("contact id: %d\n", contact)
				return nil
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Int32Var(&x, "x", 0, "Absolute X position")
	cmd.Flags().Int32Var(&y, "y", 0, "Absolute Y position")
	return cmd
}

func touchMoveCmd() *cobra.Command {
	var id, contact uint32
	var x, y int32
	cmd := &cobra.Command{
		Use:   "touch-move",
		Short: "Move a touch contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return c.TouchMove(id, contact, x, y)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Uint32Var(&contact, "contact", 0, "Contact id")
	cmd.Flags().Int32Var(&x, "x", 0, "Absolute X position")
	cmd.Flags().Int32Var(&y, "y", 0, "Absolute Y position")
	return cmd
}

func touchUpCmd() *cobra.Command {
	var id, contact uint32
	cmd := &cobra.Command{
		Use:   "touch-up",
		Short: "End a touch contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return c.TouchUp(id, contact)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	cmd.Flags().Uint32Var(&contact, "contact", 0, "Contact id")
	return cmd
}

func removeDeviceCmd() *cobra.Command {
	var id uint32
	cmd := &cobra.Command{
		Use:   "remove-device",
		Short: "Remove a virtual device",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return c.RemoveDevice(id)
			})
		},
	}
	cmd.Flags().Uint32Var(&id, "id", 0, "Device id")
	return cmd
}

func secondMonitorCmd() *cobra.Command {
	var enable bool
	cmd := &cobra.Command{
		Use:   "second-monitor",
		Short: "Connect or disconnect the second virtual output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				return c.EnableSecondMonitor(enable)
			})
		},
	}
	cmd.Flags().BoolVar(&enable, "enable", true, "Connect (true) or disconnect (false)")
	return cmd
}

func videoInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video-info",
		Short: "Show the virtual output, CRTC and mode identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(c *client.Client) error {
				info, err := c.GetVideoInfo()
				if err != nil {
					return err
				}
				fmt.Printf("second crtc:   %d\n", info.SecondCRTC)
				fmt.Printf("first output:  %d\n", info.FirstOutput)
				fmt.Printf("second output: %d\n", info.SecondOutput)
				fmt.Printf("small mode:    %d\n", info.SmallMode)
				fmt.Printf("large mode:    %d\n", info.LargeMode)
				return nil
			})
		},
	}
}
