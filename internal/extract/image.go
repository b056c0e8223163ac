package extract

import (
	"strconv"

	"github.com/jonathan/voyager-parser/internal/component"
)

// preferredLogoWidth is the artifact size organization logos are served at.
const preferredLogoWidth = 200

// VectorImageURL assembles a full image URL from a vector image, preferring
// the 200px artifact and falling back to the first available size.
func VectorImageURL(img *component.VectorImage) (string, bool) {
	if img == nil || len(img.Artifacts) == 0 {
		return "", false
	}
	for _, a := range img.Artifacts {
		if a.Width == preferredLogoWidth {
			return img.RootURL + a.FileIdentifyingUrlPathSegment, true
		}
	}
	return img.RootURL + img.Artifacts[0].FileIdentifyingUrlPathSegment, true
}

// VectorImageSizes maps every artifact size of a vector image to its full
// URL, keyed "WxW".
func VectorImageSizes(img *component.VectorImage) map[string]string {
	if img == nil || len(img.Artifacts) == 0 {
		return nil
	}
	sizes := make(map[string]string, len(img.Artifacts))
	for _, a := range img.Artifacts {
		if a.Width == 0 || a.FileIdentifyingUrlPathSegment == "" {
			continue
		}
		key := strconv.Itoa(a.Width) + "x" + strconv.Itoa(a.Width)
		sizes[key] = img.RootURL + a.FileIdentifyingUrlPathSegment
	}
	if len(sizes) == 0 {
		return nil
	}
	return sizes
}

// HitPhotoPath returns the bare artifact path segment of a search hit's
// profile photo. Search payloads carry only the segment; the caller owns
// any base-URL joining.
func HitPhotoPath(img *component.Image) (string, bool) {
	if img == nil {
		return "", false
	}
	for _, attr := range img.Attributes {
		if attr.DetailData == nil || attr.DetailData.NonEntityProfilePicture == nil {
			continue
		}
		vec := attr.DetailData.NonEntityProfilePicture.VectorImage
		if vec == nil || len(vec.Artifacts) == 0 {
			continue
		}
		if seg := vec.Artifacts[0].FileIdentifyingUrlPathSegment; seg != "" {
			return seg, true
		}
	}
	return "", false
}

// HitRingStatus returns the ring-status annotation of a search hit's photo.
func HitRingStatus(img *component.Image) RingStatus {
	if img == nil || len(img.Attributes) == 0 {
		return RingFromStatus("")
	}
	detail := img.Attributes[0].DetailData
	if detail == nil || detail.NonEntityProfilePicture == nil {
		return RingFromStatus("")
	}
	return RingFromStatus(detail.NonEntityProfilePicture.RingStatus)
}

// HitBadgeIcon returns the icon identifier of a search hit's badge.
func HitBadgeIcon(img *component.Image) string {
	if img == nil || len(img.Attributes) == 0 {
		return ""
	}
	if img.Attributes[0].DetailData == nil {
		return ""
	}
	return img.Attributes[0].DetailData.Icon
}
