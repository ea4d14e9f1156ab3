package imaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// DecodeAndValidate parses raw model output into an ImagingFindingsSummary
// and applies the safety contract: strict decode, exact limitations check,
// then a fail-fast forbidden-phrase scan. Anatomical observations are
// scanned region by region in sorted key order so the reported field path
// is deterministic; a violation in any region reports
// "anatomical_observations.<region>".
func DecodeAndValidate(raw []byte, lang safety.Language) (*ImagingFindingsSummary, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var data ImagingFindingsSummary
	if err := dec.Decode(&data); err != nil {
		return nil, &safety.MalformedInputError{Err: err}
	}
	if dec.More() {
		return nil, &safety.MalformedInputError{Err: fmt.Errorf("trailing content after document object")}
	}

	if err := safety.CheckDisclaimer("limitations", data.Limitations, safety.DocumentImaging, lang); err != nil {
		return nil, err
	}

	if err := safety.ScanField("image_type", data.ImageType, lang); err != nil {
		return nil, err
	}
	if err := safety.ScanField("quality_assessment", data.QualityAssessment, lang); err != nil {
		return nil, err
	}

	regions := make([]string, 0, len(data.AnatomicalObservations))
	for region := range data.AnatomicalObservations {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	for _, region := range regions {
		for _, obs := range data.AnatomicalObservations[region] {
			if err := safety.ScanField("anatomical_observations."+region, obs, lang); err != nil {
				return nil, err
			}
		}
	}

	return &data, nil
}
