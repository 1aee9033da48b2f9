// Package qos implements QoS policy commands for netctl.
package qos

import (
	"fmt"
	"strings"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for QoS policies.
var Cmd = &cobra.Command{
	Use:   "qos",
	Short: "QoS policy management",
	Long: `Manage QoS policies. A policy groups dscp, ratelimit and scheduler
settings given as KEY=VALUE pairs.

Examples:
  # Create a policy marking traffic with DSCP 10
  netctl qos create --name gold --dscp dscp=10

  # Replace the policies of an existing QoS
  netctl qos update gold --scheduler weight=16 --ratelimit max_rate=1000`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cmdutil.NewShowCmd(resource.QoS, "QoS policy", `Show a QoS policy.

Examples:
  netctl qos show gold`))
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(cmdutil.NewDeleteCmd(resource.QoS, "QoS policy", `Delete a QoS policy.

Examples:
  netctl qos delete gold --force`))
}

// policyFlags holds the attributes shared by create and update.
type policyFlags struct {
	name        string
	description string
	dscp        []string
	ratelimit   []string
	scheduler   []string
}

func (f *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Name of the QoS policy")
	cmd.Flags().StringVar(&f.description, "description", "", "Description of the QoS policy")
	cmd.Flags().StringArrayVar(&f.dscp, "dscp", nil, "dscp policy KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&f.ratelimit, "ratelimit", nil, "ratelimit policy KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&f.scheduler, "scheduler", nil, "scheduler policy KEY=VALUE (repeatable)")
}

// request builds the QoS body. policies is always sent, empty when no
// policy flag was given.
func (f *policyFlags) request() (*apiclient.QoSRequest, error) {
	req := &apiclient.QoSRequest{
		Name:        f.name,
		Description: f.description,
		Policies:    map[string]map[string]string{},
	}

	for _, p := range []struct {
		kind  string
		pairs []string
	}{
		{apiclient.PolicyDSCP, f.dscp},
		{apiclient.PolicyRateLimit, f.ratelimit},
		{apiclient.PolicyScheduler, f.scheduler},
	} {
		if len(p.pairs) == 0 {
			continue
		}
		policy, err := parsePolicy(p.kind, p.pairs)
		if err != nil {
			return nil, err
		}
		req.Policies[p.kind] = policy
	}
	return req, nil
}

func parsePolicy(kind string, pairs []string) (map[string]string, error) {
	policy := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid %s policy %q: expected KEY=VALUE", kind, pair)
		}
		policy[key] = value
	}
	return policy, nil
}
