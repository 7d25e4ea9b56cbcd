package domain

// NegativeKeywordList representa uma lista de palavras-chave negativas
// compartilhada e a campanha à qual está aplicada
type NegativeKeywordList struct {
	ListName              string `json:"listName"`
	ListID                string `json:"listId"`
	ListType              string `json:"listType"`
	AppliedToCampaignName string `json:"appliedToCampaignName"`
	AppliedToCampaignID   string `json:"appliedToCampaignId"`
}

func (m NegativeKeywordList) Columns() []string {
	return []string{"listName", "listId", "listType", "appliedToCampaignName", "appliedToCampaignId"}
}

func (m NegativeKeywordList) Get(key string) any {
	switch key {
	case "listName":
		return m.ListName
	case "listId":
		return m.ListID
	case "listType":
		return m.ListType
	case "appliedToCampaignName":
		return m.AppliedToCampaignName
	case "appliedToCampaignId":
		return m.AppliedToCampaignID
	}
	return nil
}

// CampaignNegative representa uma palavra-chave negativa aplicada no nível de campanha
type CampaignNegative struct {
	CampaignName string `json:"campaignName"`
	CampaignID   string `json:"campaignId"`
	CriterionID  string `json:"criterionId"`
	KeywordText  string `json:"keywordText"`
	MatchType    string `json:"matchType"`
}

func (m CampaignNegative) Columns() []string {
	return []string{"campaignName", "campaignId", "criterionId", "keywordText", "matchType"}
}

func (m CampaignNegative) Get(key string) any {
	switch key {
	case "campaignName":
		return m.CampaignName
	case "campaignId":
		return m.CampaignID
	case "criterionId":
		return m.CriterionID
	case "keywordText":
		return m.KeywordText
	case "matchType":
		return m.MatchType
	}
	return nil
}

// AdGroupNegative representa uma palavra-chave negativa aplicada no nível de grupo de anúncios
type AdGroupNegative struct {
	CampaignName string `json:"campaignName"`
	CampaignID   string `json:"campaignId"`
	AdGroupName  string `json:"adGroupName"`
	AdGroupID    string `json:"adGroupId"`
	CriterionID  string `json:"criterionId"`
	KeywordText  string `json:"keywordText"`
	MatchType    string `json:"matchType"`
}

func (m AdGroupNegative) Columns() []string {
	return []string{"campaignName", "campaignId", "adGroupName", "adGroupId", "criterionId", "keywordText", "matchType"}
}

func (m AdGroupNegative) Get(key string) any {
	switch key {
	case "campaignName":
		return m.CampaignName
	case "campaignId":
		return m.CampaignID
	case "adGroupName":
		return m.AdGroupName
	case "adGroupId":
		return m.AdGroupID
	case "criterionId":
		return m.CriterionID
	case "keywordText":
		return m.KeywordText
	case "matchType":
		return m.MatchType
	}
	return nil
}

// SharedListKeyword representa uma palavra-chave pertencente a uma lista compartilhada
type SharedListKeyword struct {
	ListID      string `json:"listId"`
	CriterionID string `json:"criterionId"`
	KeywordText string `json:"keywordText"`
	MatchType   string `json:"matchType"`
	Type        string `json:"type"`
}

func (m SharedListKeyword) Columns() []string {
	return []string{"listId", "criterionId", "keywordText", "matchType", "type"}
}

func (m SharedListKeyword) Get(key string) any {
	switch key {
	case "listId":
		return m.ListID
	case "criterionId":
		return m.CriterionID
	case "keywordText":
		return m.KeywordText
	case "matchType":
		return m.MatchType
	case "type":
		return m.Type
	}
	return nil
}
