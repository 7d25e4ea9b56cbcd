package domain

// CampaignStatus representa o estado atual de uma campanha e seu canal
type CampaignStatus struct {
	CampaignID   string `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	Status       string `json:"status"`
	ChannelType  string `json:"channelType"`
}

func (m CampaignStatus) Columns() []string {
	return []string{"campaignId", "campaignName", "status", "channelType"}
}

func (m CampaignStatus) Get(key string) any {
	switch key {
	case "campaignId":
		return m.CampaignID
	case "campaignName":
		return m.CampaignName
	case "status":
		return m.Status
	case "channelType":
		return m.ChannelType
	}
	return nil
}
