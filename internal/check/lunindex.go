package check

import (
	"fmt"
	"strings"
)

// BuildLunIndex maps the disc key of every LUN referenced by the SCSI
// topology to its zero-padded slot label. Duplicate keys are last-write-wins;
// a sane topology references each LUN key once.
func BuildLunIndex(topology []TopologyLun) map[string]string {
	index := make(map[string]string, len(topology))
	for _, t := range topology {
		index[discKey(t.Key)] = fmt.Sprintf("%03d", t.Slot)
	}
	return index
}

// discKey extracts the trailing dash-delimited segment of an internal LUN
// key, e.g. "key-vim.host.ScsiLun-0005...30" -> "0005...30".
func discKey(key string) string {
	if i := strings.LastIndex(key, "-"); i >= 0 {
		return key[i+1:]
	}
	return key
}
