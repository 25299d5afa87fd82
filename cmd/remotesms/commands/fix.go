package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"remotesms/internal/domain"
	domaintypes "remotesms/internal/domain/types"
)

func fixCmd() *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "fix <lat> <lon>",
		Short: "Record a last-known location fix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil || lat < -90 || lat > 90 {
				return fmt.Errorf("bad latitude %q", args[0])
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil || lon < -180 || lon > 180 {
				return fmt.Errorf("bad longitude %q", args[1])
			}
			p := domain.LocationProvider(provider)
			if p != domaintypes.ProviderGPS && p != domaintypes.ProviderNetwork {
				return fmt.Errorf("unknown provider %q", provider)
			}
			fix := domain.Fix{Latitude: lat, Longitude: lon, At: time.Now(), Provider: p}
			if err := appCtx.Location.Record(fix); err != nil {
				return err
			}
			fmt.Printf("recorded %s fix %.6f, %.6f\n", p, lat, lon)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", string(domaintypes.ProviderGPS), "gps or network")
	return cmd
}
