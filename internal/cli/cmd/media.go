package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/camview/internal/application/usecase"
	"github.com/bnema/camview/internal/cli/styles"
	"github.com/bnema/camview/internal/infrastructure/media"
)

// errNoSink makes `camview media` exit non-zero when the viewer cannot start.
var errNoSink = errors.New("no usable display sink")

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Check which configured GStreamer elements are installed",
	Long: `Initialize GStreamer and report whether each configured element factory
is registered: the video source, the test source, the OpenGL sink and its
wrapper bin, and the software sink. Also shows which sink path the viewer
would take.`,
	Args: cobra.NoArgs,
	RunE: runMedia,
}

func init() {
	rootCmd.AddCommand(mediaCmd)
}

func runMedia(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	uc := usecase.NewCheckMediaUseCase(media.New())

	out, err := uc.Execute(a.Ctx(), usecase.CheckMediaInput{
		Names: a.Config.FactoryNames(),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewMediaRenderer(a.Theme).Render(out))
	if !out.CanRender {
		return errNoSink
	}
	return nil
}
