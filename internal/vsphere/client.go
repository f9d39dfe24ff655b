// Package vsphere is the remote inventory client: it resolves one host and
// fetches its storage-device snapshot. All decision logic lives in
// internal/check; this package only talks to the endpoint.
package vsphere

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/view"
	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtomon/check-vsphere-storage/internal/config"
)

// ErrHostNotFound is returned when the named host does not exist in the
// inventory.
var ErrHostNotFound = errors.New("host not found")

type Client struct {
	c *govmomi.Client
}

// Host is the slice of a HostSystem this check needs.
type Host struct {
	Name              string
	InMaintenanceMode bool

	storageSystem *types.ManagedObjectReference
}

// Connect establishes an authenticated session against the endpoint.
func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	u, err := soap.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing vCenter URL: %w", err)
	}
	u.User = url.UserPassword(cfg.Username, cfg.Password)

	c, err := govmomi.NewClient(ctx, u, cfg.Insecure)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", u.Host, err)
	}
	zap.S().Named("vsphere").Debugf("connected to %s", u.Host)

	return &Client{c: c}, nil
}

func (c *Client) Close(ctx context.Context) {
	_ = c.c.Logout(ctx)
}

// FindHost resolves a host by name anywhere below the root folder and
// returns the properties the check consumes.
func (c *Client) FindHost(ctx context.Context, name string) (*Host, error) {
	m := view.NewManager(c.c.Client)
	v, err := m.CreateContainerView(ctx, c.c.ServiceContent.RootFolder, []string{"HostSystem"}, true)
	if err != nil {
		return nil, fmt.Errorf("creating host view: %w", err)
	}
	defer func() { _ = v.Destroy(ctx) }()

	var hosts []mo.HostSystem
	props := []string{"name", "runtime.inMaintenanceMode", "configManager.storageSystem"}
	if err := v.Retrieve(ctx, []string{"HostSystem"}, props, &hosts); err != nil {
		return nil, fmt.Errorf("retrieving hosts: %w", err)
	}

	for _, h := range hosts {
		if h.Name != name {
			continue
		}
		return &Host{
			Name:              h.Name,
			InMaintenanceMode: h.Runtime.InMaintenanceMode,
			storageSystem:     h.ConfigManager.StorageSystem,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrHostNotFound, name)
}
