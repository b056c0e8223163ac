package assemble

import (
	"github.com/jonathan/voyager-parser/internal/extract"
	"github.com/jonathan/voyager-parser/internal/store"
	"github.com/jonathan/voyager-parser/internal/types"
)

// Contact assembles the contact-info section from a profile response.
// The fields here are already structured on the Profile entity, so this is
// a direct projection with no text extraction.
func Contact(raw *types.RawResponse, _ Options) (*types.ContactInfo, *Diagnostics, error) {
	diag := &Diagnostics{}
	if err := checkShape(raw); err != nil {
		return nil, diag, err
	}

	s := store.FromResponse(raw)
	info := &types.ContactInfo{
		PhoneNumbers:  []types.ContactPhone{},
		Websites:      []types.ContactWebsite{},
		SocialHandles: []types.SocialHandle{},
	}

	profiles := s.OfKind(types.KindProfile)
	if len(profiles) == 0 {
		diag.warn(WarnUnresolvedReference, "Profile", "no profile entity in included")
		return info, diag, nil
	}
	profile := profiles[0].(*types.Profile)

	info.FirstName = optional(profile.FirstName)
	info.LastName = optional(profile.LastName)
	info.PublicIdentifier = optional(profile.PublicIdentifier)
	info.Headline = optional(profile.Headline)
	info.Address = optional(profile.Address)

	if profile.EmailAddress != nil {
		info.Email = optional(profile.EmailAddress.EmailAddress)
	}

	for _, phone := range profile.PhoneNumbers {
		if phone.PhoneNumber == nil || phone.PhoneNumber.Number == "" {
			continue
		}
		info.PhoneNumbers = append(info.PhoneNumbers, types.ContactPhone{
			Number: phone.PhoneNumber.Number,
			Type:   phone.Type,
		})
	}

	for _, site := range profile.Websites {
		if site.URL == "" {
			continue
		}
		category := site.Category
		if category == "" {
			category = site.Label
		}
		if category == "" {
			category = "OTHER"
		}
		info.Websites = append(info.Websites, types.ContactWebsite{URL: site.URL, Category: category})
	}

	for _, handle := range profile.TwitterHandles {
		name := handle.Name
		if name == "" {
			name = handle.CredentialID
		}
		if name == "" {
			continue
		}
		info.SocialHandles = append(info.SocialHandles, types.SocialHandle{Platform: "twitter", Name: name})
	}

	for _, im := range profile.InstantMessengers {
		if im.Provider == "" || im.ID == "" {
			continue
		}
		info.InstantMessengers = append(info.InstantMessengers, types.ContactIM{Provider: im.Provider, Name: im.ID})
	}

	if profile.BirthDateOn != nil {
		birthdate := *profile.BirthDateOn
		info.Birthdate = &birthdate
	}

	if profile.ProfilePicture != nil && profile.ProfilePicture.DisplayImageReference != nil {
		info.ProfilePicture = extract.VectorImageSizes(profile.ProfilePicture.DisplayImageReference.VectorImage)
	}

	return info, diag, nil
}
