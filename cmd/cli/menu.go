// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/go-arcade/console/internal/engine/model"
	"github.com/go-arcade/console/internal/engine/service"
	"github.com/go-arcade/console/internal/engine/tree"
	"github.com/go-arcade/console/pkg/authz"
)

type renderOptions struct {
	baselineFile string
	routesFile   string
	roles        []string
	hideHome     bool
	flat         bool
	casbinModel  string
	casbinPolicy string
}

type renderOutput struct {
	Menus      []*model.RouteNode `json:"menus,omitempty"`
	Flattening []string           `json:"flattening,omitempty"`
}

func newMenuCmd() *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Navigation menu tools",
	}

	opts := &renderOptions{}
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble the menu a role set would see and print it as JSON",
		Example: "  console-cli menu render --routes routes.yaml --roles admin\n" +
			"  console-cli menu render --baseline conf.d/menus.yaml --routes routes.json --roles hr --flat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	flags := renderCmd.Flags()
	flags.StringVar(&opts.baselineFile, "baseline", "", "baseline menu file (yaml/json), built-in menu when empty")
	flags.StringVar(&opts.routesFile, "routes", "", "dynamic routes file (yaml/json) as returned by the route source")
	flags.StringSliceVar(&opts.roles, "roles", nil, "roles held by the user, comma separated")
	flags.BoolVar(&opts.hideHome, "hide-home", false, "do not inject the home entry")
	flags.BoolVar(&opts.flat, "flat", false, "print the sorted route names of the flattened index instead of the tree")
	flags.StringVar(&opts.casbinModel, "casbin-model", "", "casbin model file, enables path based checks together with --casbin-policy")
	flags.StringVar(&opts.casbinPolicy, "casbin-policy", "", "casbin policy csv file")

	menuCmd.AddCommand(renderCmd)
	return menuCmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	baseline, err := service.LoadBaseline(opts.baselineFile)
	if err != nil {
		return err
	}
	var routes []*model.RouteNode
	if opts.routesFile != "" {
		if routes, err = service.LoadRoutesFile(opts.routesFile); err != nil {
			return fmt.Errorf("load routes: %w", err)
		}
	}

	check, err := checker(opts)
	if err != nil {
		return err
	}
	store := service.NewPermissionStore(baseline,
		service.WithHideHome(opts.hideHome),
		service.WithPermissionChecker(check),
	)
	store.HandleWholeMenus(routes)

	var out renderOutput
	if opts.flat {
		out.Flattening = slices.Sorted(maps.Keys(store.FlatteningRoutes()))
	} else {
		out.Menus = store.WholeMenus()
	}
	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func checker(opts *renderOptions) (tree.PermissionChecker, error) {
	if opts.casbinModel == "" && opts.casbinPolicy == "" {
		return tree.RoleChecker(opts.roles...), nil
	}
	authorizer, err := authz.NewFromConf(&authz.Conf{
		Mode:       string(authz.ModeEnforce),
		ModelPath:  opts.casbinModel,
		PolicyPath: opts.casbinPolicy,
	})
	if err != nil {
		return nil, err
	}
	return func(node *model.RouteNode) bool {
		return authorizer.Allowed(opts.roles, node.Path, node.Meta.Roles())
	}, nil
}
