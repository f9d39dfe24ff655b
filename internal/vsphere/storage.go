package vsphere

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vim25/mo"
	"go.uber.org/zap"

	"github.com/virtomon/check-vsphere-storage/internal/check"
)

// StorageSnapshot fetches the host's storageDeviceInfo property once and
// maps it into the check's neutral model. The snapshot is never refreshed
// within a run.
func (c *Client) StorageSnapshot(ctx context.Context, host *Host) (*check.Snapshot, error) {
	if host.storageSystem == nil {
		return nil, fmt.Errorf("host %s has no storage system", host.Name)
	}

	var ss mo.HostStorageSystem
	if err := c.c.RetrieveOne(ctx, *host.storageSystem, []string{"storageDeviceInfo"}, &ss); err != nil {
		return nil, fmt.Errorf("retrieving storage device info for %s: %w", host.Name, err)
	}

	snap := &check.Snapshot{}
	info := ss.StorageDeviceInfo
	if info == nil {
		return snap, nil
	}

	for _, base := range info.HostBusAdapter {
		hba := base.GetHostHostBusAdapter()
		snap.Adapters = append(snap.Adapters, check.Adapter{
			Device: hba.Device,
			Model:  hba.Model,
			Key:    hba.Key,
			Status: hba.Status,
		})
	}

	for _, base := range info.ScsiLun {
		lun := base.GetScsiLun()
		snap.Luns = append(snap.Luns, check.Lun{
			CanonicalName:    lun.CanonicalName,
			UUID:             lun.Uuid,
			Key:              lun.Key,
			DisplayName:      lun.DisplayName,
			OperationalState: lun.OperationalState,
		})
	}

	if info.ScsiTopology != nil {
		for _, adapter := range info.ScsiTopology.Adapter {
			for _, target := range adapter.Target {
				for _, lun := range target.Lun {
					snap.Topology = append(snap.Topology, check.TopologyLun{
						Key:  lun.ScsiLun,
						Slot: lun.Lun,
					})
				}
			}
		}
	}

	zap.S().Named("vsphere").Debugf("snapshot for %s: %d adapters, %d luns, %d topology entries",
		host.Name, len(snap.Adapters), len(snap.Luns), len(snap.Topology))

	return snap, nil
}
