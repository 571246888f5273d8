package domain

// FieldName identifies a single top-level field of a laptop spec record.
type FieldName string

const (
	FieldDisplay          FieldName = "display"
	FieldCPU              FieldName = "cpu"
	FieldGPU              FieldName = "gpu"
	FieldMemory           FieldName = "memory"
	FieldStorage          FieldName = "storage"
	FieldPorts            FieldName = "ports"
	FieldCamera           FieldName = "camera"
	FieldWireless         FieldName = "wireless"
	FieldBattery          FieldName = "battery"
	FieldDimensionsWeight FieldName = "dimensions_weight"
)

// SpecFields lists every spec field in response order.
var SpecFields = []FieldName{
	FieldDisplay,
	FieldCPU,
	FieldGPU,
	FieldMemory,
	FieldStorage,
	FieldPorts,
	FieldCamera,
	FieldWireless,
	FieldBattery,
	FieldDimensionsWeight,
}

// SpecData is a flat spec record of plain values. It is the shape of both the
// hand-authored fallback record and the extractor's partial output (empty
// string means "unset").
type SpecData struct {
	Display          string
	CPU              string
	GPU              string
	Memory           string
	Storage          string
	Ports            string
	Camera           string
	Wireless         string
	Battery          string
	DimensionsWeight string
}

// Field returns the value of the named field.
func (d *SpecData) Field(name FieldName) string {
	switch name {
	case FieldDisplay:
		return d.Display
	case FieldCPU:
		return d.CPU
	case FieldGPU:
		return d.GPU
	case FieldMemory:
		return d.Memory
	case FieldStorage:
		return d.Storage
	case FieldPorts:
		return d.Ports
	case FieldCamera:
		return d.Camera
	case FieldWireless:
		return d.Wireless
	case FieldBattery:
		return d.Battery
	case FieldDimensionsWeight:
		return d.DimensionsWeight
	}
	return ""
}

// Provenance marks whether a spec field came from the live vendor page or the
// static fallback record.
type Provenance string

const (
	SourceLive     Provenance = "live"
	SourceFallback Provenance = "fallback"
)

// SpecField is a single spec value with its provenance.
type SpecField struct {
	Value  string     `json:"value"`
	Source Provenance `json:"source"`
}

// SpecRecord is the merged, client-facing spec record. Every field carries a
// provenance marker so consumers can tell canned live detections apart from
// the static fallback.
type SpecRecord struct {
	Display          SpecField `json:"display"`
	CPU              SpecField `json:"cpu"`
	GPU              SpecField `json:"gpu"`
	Memory           SpecField `json:"memory"`
	Storage          SpecField `json:"storage"`
	Ports            SpecField `json:"ports"`
	Camera           SpecField `json:"camera"`
	Wireless         SpecField `json:"wireless"`
	Battery          SpecField `json:"battery"`
	DimensionsWeight SpecField `json:"dimensions_weight"`
	Sources          []string  `json:"sources"`
}

// setField assigns a merged field by name.
func (r *SpecRecord) setField(name FieldName, f SpecField) {
	switch name {
	case FieldDisplay:
		r.Display = f
	case FieldCPU:
		r.CPU = f
	case FieldGPU:
		r.GPU = f
	case FieldMemory:
		r.Memory = f
	case FieldStorage:
		r.Storage = f
	case FieldPorts:
		r.Ports = f
	case FieldCamera:
		r.Camera = f
	case FieldWireless:
		r.Wireless = f
	case FieldBattery:
		r.Battery = f
	case FieldDimensionsWeight:
		r.DimensionsWeight = f
	}
}

// FieldByName returns the merged field by name (used in tests).
func (r *SpecRecord) FieldByName(name FieldName) SpecField {
	switch name {
	case FieldDisplay:
		return r.Display
	case FieldCPU:
		return r.CPU
	case FieldGPU:
		return r.GPU
	case FieldMemory:
		return r.Memory
	case FieldStorage:
		return r.Storage
	case FieldPorts:
		return r.Ports
	case FieldCamera:
		return r.Camera
	case FieldWireless:
		return r.Wireless
	case FieldBattery:
		return r.Battery
	case FieldDimensionsWeight:
		return r.DimensionsWeight
	}
	return SpecField{}
}

// MergeSpec builds the client-facing record from the fallback and the
// extractor's partial output. The merge is field-granular: an extracted value
// wins for its field only, every other field keeps the fallback value.
func MergeSpec(fallback SpecData, extracted map[FieldName]string, sources []string) SpecRecord {
	var rec SpecRecord
	for _, name := range SpecFields {
		if v, ok := extracted[name]; ok && v != "" {
			rec.setField(name, SpecField{Value: v, Source: SourceLive})
			continue
		}
		rec.setField(name, SpecField{Value: fallback.Field(name), Source: SourceFallback})
	}
	rec.Sources = sources
	return rec
}
