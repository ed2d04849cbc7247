package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/cmdchain/encoder"
	"github.com/gogpu/cmdchain/internal/shader"
	"github.com/gogpu/cmdchain/recording"
	"github.com/gogpu/wgpu/hal"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a scenario chain into a target",
	Long: `Builds the scenario chain (layout bind, pipeline bind, optional index bind,
dispatch), records it, prints the recorded primitives and replays them into
the selected target.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		target, _ := cmd.Flags().GetString("target")

		s := DefaultScenario()
		if configPath != "" {
			var err error
			if s, err = LoadScenario(configPath); err != nil {
				return err
			}
		}
		return runRecord(cmd.OutOrStdout(), s, target)
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringP("config", "c", "", "Scenario file (YAML)")
	recordCmd.Flags().StringP("target", "t", "", "Recording target (see 'cmdchain targets'); empty picks the default")
}

// halDevicer is implemented by targets that record on a device of their own.
type halDevicer interface {
	HALDevice() hal.Device
}

// commandBufferFinisher is implemented by targets that produce command buffers.
type commandBufferFinisher interface {
	Finish() ([]hal.CommandBuffer, error)
}

func runRecord(w io.Writer, s Scenario, target string) error {
	if target == "" {
		target = recording.DefaultName()
	}
	rec, err := recording.NewTarget(target)
	if err != nil {
		return err
	}
	if c, ok := rec.(interface{ Close() }); ok {
		defer c.Close()
	}

	// Resources must live on the target's device when it has one.
	var device hal.Device
	if d, ok := rec.(halDevicer); ok {
		device = d.HALDevice()
	} else {
		provider, err := encoder.OpenHeadless()
		if err != nil {
			return err
		}
		defer provider.Close()
		device = provider.HALDevice()
	}

	source := shader.ScaleWGSL
	if s.Shader != "" {
		data, err := os.ReadFile(s.Shader)
		if err != nil {
			return fmt.Errorf("failed to read shader: %w", err)
		}
		source = string(data)
	}

	kernel, err := shader.NewKernel(device, shader.KernelDescriptor{
		Label:       s.Label,
		Source:      source,
		StorageSize: s.StorageSize,
	})
	if err != nil {
		return err
	}
	defer kernel.Destroy()

	res := resources{
		pipeline: kernel.Pipeline,
		layout:   kernel.Layout,
		sets:     []hal.BindGroup{kernel.Group},
	}
	if s.HasIndex() {
		buf, err := shader.CreateIndexBuffer(device, s.Label+"_indices", s.Index.Size)
		if err != nil {
			return err
		}
		defer device.DestroyBuffer(buf)
		res.index = buf
	}

	chain, err := buildChain(s, res)
	if err != nil {
		return err
	}

	trace := recording.NewRecorder(recording.WithLabel(s.Label))
	if err := chain.Build(trace); err != nil {
		return fmt.Errorf("record %s: %w", s.Label, err)
	}
	r := trace.Finish()
	fmt.Fprint(w, r)

	if err := r.Playback(rec); err != nil {
		return fmt.Errorf("replay into %s: %w", target, err)
	}
	fmt.Fprintf(w, "target %s: replayed %d commands\n", target, r.Len())

	if f, ok := rec.(commandBufferFinisher); ok {
		cbs, err := f.Finish()
		if err != nil {
			return fmt.Errorf("finish %s: %w", target, err)
		}
		fmt.Fprintf(w, "target %s: encoded %d command buffers\n", target, len(cbs))
	}
	return nil
}
