package check

// Adapter is a host bus adapter as reported by the host's storage system.
type Adapter struct {
	Device string
	Model  string
	Key    string
	Status string
}

// Lun is a SCSI logical unit as reported by the host's storage system.
type Lun struct {
	CanonicalName    string
	UUID             string
	Key              string
	DisplayName      string
	OperationalState []string
}

// TopologyLun is one adapter/target/lun association from the host's SCSI
// topology, flattened in traversal order.
type TopologyLun struct {
	// Key is the internal key of the referenced SCSI LUN.
	Key string
	// Slot is the LUN number within its adapter/target path.
	Slot int32
}

// Snapshot is the storage-device state of one host, fetched once per run
// and never refreshed.
type Snapshot struct {
	Adapters []Adapter
	Luns     []Lun
	Topology []TopologyLun
}
