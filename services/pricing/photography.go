package pricing

import (
	"fmt"
	"strings"

	"studioquote/models"
)

// photographyItems resolves the base line for a photography selection.
// Returns nil when the sub-type is unset or unknown.
func photographyItems(sel models.Selection) []models.LineItem {
	subName, ok := models.PhotographySubServices[sel.PhotographySubType]
	if !ok {
		return nil
	}

	switch sel.PhotographySubType {
	case models.PhotoEvent:
		return []models.LineItem{{
			Label:  baseLabel(models.ServicePhotography, subName, durationDetail(sel.PhotoEventDuration, sel.PhotoEventHours)),
			Amount: durationPrice(photoEventRates, sel.PhotoEventDuration, sel.PhotoEventHours),
		}}

	case models.PhotoRealEstate:
		if len(sel.PhotoRealEstateProperties) == 0 {
			return nil
		}
		var total float64
		for _, prop := range sel.PhotoRealEstateProperties {
			rates, ok := realEstatePhotoRates[prop.Type]
			if !ok {
				continue
			}
			if prop.Furnished {
				total += rates[1]
			} else {
				total += rates[0]
			}
		}
		detail := "1 property"
		if n := len(sel.PhotoRealEstateProperties); n > 1 {
			detail = fmt.Sprintf("%d properties", n)
		}
		return []models.LineItem{{
			Label:  baseLabel(models.ServicePhotography, subName, detail),
			Amount: total,
		}}

	case models.PhotoHeadshots:
		people := sel.PhotoHeadshotsPeople
		if people < 1 {
			people = 1
		}
		detail := "1 person"
		if people > 1 {
			detail = fmt.Sprintf("%d people", people)
		}
		return []models.LineItem{{
			Label:  baseLabel(models.ServicePhotography, subName, detail),
			Amount: float64(people) * headshotPerPerson,
		}}

	case models.PhotoProduct:
		return perPhotoItem(subName, sel.PhotoProductPhotos, sel.PhotoProductComplexity, productPhotoRates)

	case models.PhotoFood:
		return perPhotoItem(subName, sel.PhotoFoodPhotos, sel.PhotoFoodComplexity, foodPhotoRates)

	case models.PhotoFashion:
		return packageItem(subName, sel.PhotoFashionPackage, fashionPackages)

	case models.PhotoWedding:
		return packageItem(subName, sel.PhotoWeddingPackage, weddingPackages)
	}
	return nil
}

func perPhotoItem(subName string, photos int, complexity string, rates map[string]float64) []models.LineItem {
	if photos < 1 {
		photos = 1
	}
	rate, ok := rates[complexity]
	if !ok {
		rate = rates["simple"]
	}
	detail := "1 photo"
	if photos > 1 {
		detail = fmt.Sprintf("%d photos", photos)
	}
	return []models.LineItem{{
		Label:  baseLabel(models.ServicePhotography, subName, fmt.Sprintf("%s, %s", detail, complexity)),
		Amount: float64(photos) * rate,
	}}
}

func packageItem(subName, pkg string, packages map[string]float64) []models.LineItem {
	price, ok := packages[pkg]
	if !ok {
		return nil
	}
	detail := strings.ToUpper(pkg[:1]) + pkg[1:] + " Package"
	return []models.LineItem{{
		Label:  baseLabel(models.ServicePhotography, subName, detail),
		Amount: price,
	}}
}
