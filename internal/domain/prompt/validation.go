package prompt

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
	maxTagLength         = 64
)

// ValidateCreateInput validates fields required to create a prompt.
func ValidateCreateInput(req CreateRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, maxTitleLength),
		),
		validation.Field(&req.Description,
			validation.Length(0, maxDescriptionLength),
		),
		validation.Field(&req.StructureType,
			validation.Required,
			validation.In(structureTypeValues()...),
		),
		validation.Field(&req.Tags,
			validation.Each(validation.Length(1, maxTagLength)),
		),
	)
}

// ValidateContent checks the populated content shape against the structure
// type: segment and asset types must be known enum values, and no shape
// other than the selected one may be populated.
func ValidateContent(c Content, st StructureType) error {
	populated := 0
	if len(c.Segments) > 0 {
		populated++
	}
	if len(c.Sections) > 0 {
		populated++
	}
	if len(c.Modules) > 0 {
		populated++
	}
	if len(c.Blocks) > 0 {
		populated++
	}
	if populated > 1 {
		return fmt.Errorf("%w: multiple content shapes populated", ErrInvalidInput)
	}

	switch st {
	case StructureStandard:
		if len(c.Sections)+len(c.Modules)+len(c.Blocks) > 0 {
			return fmt.Errorf("%w: standard prompts hold segments only", ErrInvalidInput)
		}
		for _, seg := range c.Segments {
			if !validSegmentType(seg.Type) {
				return fmt.Errorf("%w: unknown segment type %q", ErrInvalidInput, seg.Type)
			}
		}
	case StructureStructured:
		if len(c.Segments)+len(c.Modules)+len(c.Blocks) > 0 {
			return fmt.Errorf("%w: structured prompts hold sections only", ErrInvalidInput)
		}
	case StructureModulized:
		if len(c.Segments)+len(c.Sections)+len(c.Blocks) > 0 {
			return fmt.Errorf("%w: modulized prompts hold modules only", ErrInvalidInput)
		}
	case StructureAdvanced:
		if len(c.Segments)+len(c.Sections)+len(c.Modules) > 0 {
			return fmt.Errorf("%w: advanced prompts hold blocks only", ErrInvalidInput)
		}
		for _, blk := range c.Blocks {
			for _, asset := range blk.Assets {
				if !validAssetType(asset.Type) {
					return fmt.Errorf("%w: unknown asset type %q", ErrInvalidInput, asset.Type)
				}
			}
		}
	default:
		return fmt.Errorf("%w: unknown structure type %q", ErrInvalidInput, st)
	}
	return nil
}

func validSegmentType(t SegmentType) bool {
	switch t {
	case SegmentSystem, SegmentUser, SegmentAssistant, SegmentContext, SegmentInstruction:
		return true
	}
	return false
}

func validAssetType(t AssetType) bool {
	switch t {
	case AssetPromptReference, AssetFile, AssetURL, AssetImage:
		return true
	}
	return false
}

func structureTypeValues() []any {
	values := make([]any, len(StructureTypes))
	for i, st := range StructureTypes {
		values[i] = st
	}
	return values
}
