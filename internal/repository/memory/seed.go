package memory

import (
	"time"

	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/domain"
)

// Seed loads the demo dataset: customers with security answers, their
// devices, chat history, two worked tickets and the request queue.
// Agent passwords are hashed at startup so no hashes live in source.
func Seed(store *Store, bcryptCost int) error {
	now := time.Now()

	seedCustomers(store)
	seedProducts(store, now)
	seedChat(store, now)
	seedRequests(store, now)
	if err := seedTickets(store, now); err != nil {
		return err
	}
	return seedAgents(store, now, bcryptCost)
}

func seedCustomers(store *Store) {
	customers := []domain.Customer{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com", Phone: "+1 (555) 123-4567", Plan: "Premium Security", DeviceCount: 8, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Smith", "Rex", "Chicago"}},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "+1 (555) 987-6543", Plan: "Basic Security", DeviceCount: 3, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Jones", "Whiskers", "Denver"}},
		{ID: 3, Name: "Robert Chen", Email: "robert.chen@example.com", Phone: "+1 (555) 234-5678", Plan: "Premium Plus", DeviceCount: 12, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Lee", "Bruno", "Seattle"}},
		{ID: 4, Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: "+1 (555) 876-5432", Plan: "Basic Security", DeviceCount: 4, Status: domain.AccountStatusSuspended, SecurityAnswers: []string{"Brown", "Luna", "Austin"}},
		{ID: 5, Name: "Michael Wong", Email: "michael.wong@example.com", Phone: "+1 (555) 345-6789", Plan: "Premium Security", DeviceCount: 6, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Chan", "Milo", "Boston"}},
		{ID: 6, Name: "Lisa Garcia", Email: "lisa.garcia@example.com", Phone: "+1 (555) 765-4321", Plan: "Basic Security", DeviceCount: 2, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Diaz", "Coco", "Miami"}},
		{ID: 7, Name: "David Kim", Email: "david.kim@example.com", Phone: "+1 (555) 456-7890", Plan: "Premium Security", DeviceCount: 5, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Park", "Max", "Portland"}},
		{ID: 8, Name: "Emma Thompson", Email: "emma.thompson@example.com", Phone: "+1 (555) 222-3333", Plan: "Basic Security", DeviceCount: 3, Status: domain.AccountStatusActive, SecurityAnswers: []string{"White", "Daisy", "Nashville"}},
		{ID: 9, Name: "Marcus Johnson", Email: "marcus.j@example.com", Phone: "+1 (555) 444-5555", Plan: "Premium Plus", DeviceCount: 9, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Green", "Shadow", "Atlanta"}},
		{ID: 10, Name: "Sophia Lee", Email: "sophia.lee@example.com", Phone: "+1 (555) 666-7777", Plan: "Premium Security", DeviceCount: 7, Status: domain.AccountStatusActive, SecurityAnswers: []string{"Kim", "Oreo", "San Diego"}},
	}
	for _, customer := range customers {
		store.AddCustomer(customer)
	}
}

func seedProducts(store *Store, now time.Time) {
	products := []domain.Product{
		{ID: 1, CustomerID: 1, Name: "Pro Doorbell", Type: "Doorbell", SerialNumber: "DB2349857", Status: domain.DeviceStatusOnline, Firmware: "2.1.4", Location: "Front Door", LastActive: now.Add(-30 * time.Minute)},
		{ID: 2, CustomerID: 1, Name: "Indoor Cam", Type: "Camera", SerialNumber: "CAM6782341", Status: domain.DeviceStatusOnline, Firmware: "1.3.2", Location: "Living Room", LastActive: now.Add(-5 * time.Minute)},
		{ID: 3, CustomerID: 1, Name: "Smart Thermostat", Type: "Thermostat", SerialNumber: "TH8762140", Status: domain.DeviceStatusOffline, Firmware: "3.0.1", Location: "Main Floor", LastActive: now.Add(-32 * time.Hour)},
		{ID: 4, CustomerID: 1, Name: "Motion Sensor", Type: "Sensor", SerialNumber: "MS4523789", Status: domain.DeviceStatusOnline, Firmware: "1.1.5", Location: "Kitchen", LastActive: now.Add(-90 * time.Minute)},
		{ID: 5, CustomerID: 4, Name: "Smart Doorbell", Type: "Doorbell", SerialNumber: "DB8812034", Status: domain.DeviceStatusOffline, Firmware: "2.0.9", Location: "Front Door", LastActive: now.Add(-6 * time.Hour)},
		{ID: 6, CustomerID: 3, Name: "Outdoor Cam", Type: "Camera", SerialNumber: "CAM1190223", Status: domain.DeviceStatusOnline, Firmware: "1.3.2", Location: "Driveway", LastActive: now.Add(-12 * time.Minute)},
	}
	for _, product := range products {
		store.AddProduct(product)
	}
}

func seedChat(store *Store, now time.Time) {
	messages := []struct {
		customerID int64
		message    string
		age        time.Duration
	}{
		{1, "Hi, my doorbell camera keeps going offline.", 26 * time.Hour},
		{1, "I already tried rebooting the router.", 25 * time.Hour},
		{4, "My new doorbell won't join the WiFi network.", 15 * time.Minute},
	}
	for _, entry := range messages {
		store.chat = append(store.chat, domain.ChatMessage{
			ID:         store.nextChatID,
			CustomerID: entry.customerID,
			Message:    entry.message,
			CreatedAt:  now.Add(-entry.age),
		})
		store.nextChatID++
	}
}

func seedRequests(store *Store, now time.Time) {
	requests := []domain.CustomerRequest{
		{ID: 1, CustomerID: 4, CustomerName: "Sarah Johnson", CustomerEmail: "sarah.johnson@example.com", CustomerPhone: "+1 (555) 876-5432", RequestType: "WiFi Connection", Category: domain.CategoryConnectivity, Channel: domain.ChannelChat, Status: domain.RequestStatusNew, Priority: domain.PriorityHigh, CreatedAt: now.Add(-10 * time.Minute), Description: "Unable to connect Smart Doorbell to WiFi network"},
		{ID: 2, CustomerID: 1, CustomerName: "John Doe", CustomerEmail: "john.doe@example.com", CustomerPhone: "+1 (555) 123-4567", RequestType: "Installation Help", Category: domain.CategoryDevice, Channel: domain.ChannelPhone, Status: domain.RequestStatusInProgress, Priority: domain.PriorityMedium, CreatedAt: now.Add(-25 * time.Minute), Description: "Needs assistance with installing new camera system"},
		{ID: 3, CustomerID: 2, CustomerName: "Jane Smith", CustomerEmail: "jane.smith@example.com", CustomerPhone: "+1 (555) 987-6543", RequestType: "Billing Inquiry", Category: domain.CategoryAccount, Channel: domain.ChannelEmail, Status: domain.RequestStatusPending, Priority: domain.PriorityLow, CreatedAt: now.Add(-18 * time.Hour), Description: "Question about recent charge on account"},
		{ID: 4, CustomerID: 5, CustomerName: "Michael Wong", CustomerEmail: "michael.wong@example.com", CustomerPhone: "+1 (555) 345-6789", RequestType: "Device Activation", Category: domain.CategoryDevice, Channel: domain.ChannelChat, Status: domain.RequestStatusNew, Priority: domain.PriorityMedium, CreatedAt: now.Add(-5 * time.Minute), Description: "Unable to activate new security system"},
		{ID: 5, CustomerID: 3, CustomerName: "Robert Chen", CustomerEmail: "robert.chen@example.com", CustomerPhone: "+1 (555) 234-5678", RequestType: "Device Malfunction", Category: domain.CategoryDevice, Channel: domain.ChannelPhone, Status: domain.RequestStatusEscalated, Priority: domain.PriorityHigh, CreatedAt: now.Add(-20 * time.Hour), Description: "Device malfunctioning within warranty period"},
		{ID: 6, CustomerID: 7, CustomerName: "David Kim", CustomerEmail: "david.kim@example.com", CustomerPhone: "+1 (555) 456-7890", RequestType: "Login Issues", Category: domain.CategoryAccount, Channel: domain.ChannelEmail, Status: domain.RequestStatusNew, Priority: domain.PriorityMedium, CreatedAt: now.Add(-150 * time.Minute), Description: "Can't login to account after password reset"},
		{ID: 7, CustomerID: 6, CustomerName: "Lisa Garcia", CustomerEmail: "lisa.garcia@example.com", CustomerPhone: "+1 (555) 765-4321", RequestType: "Subscription Change", Category: domain.CategoryAccount, Channel: domain.ChannelChat, Status: domain.RequestStatusPending, Priority: domain.PriorityLow, CreatedAt: now.Add(-19 * time.Hour), Description: "Looking to upgrade current subscription plan"},
		{ID: 8, CustomerID: 8, CustomerName: "Emma Thompson", CustomerEmail: "emma.thompson@example.com", CustomerPhone: "+1 (555) 222-3333", RequestType: "Late Delivery", Category: domain.CategoryDelivery, Channel: domain.ChannelSMS, Status: domain.RequestStatusNew, Priority: domain.PriorityHigh, CreatedAt: now.Add(-90 * time.Minute), Description: "Package was supposed to arrive yesterday but still not delivered"},
		{ID: 9, CustomerID: 9, CustomerName: "Marcus Johnson", CustomerEmail: "marcus.j@example.com", CustomerPhone: "+1 (555) 444-5555", RequestType: "Network Outage", Category: domain.CategoryConnectivity, Channel: domain.ChannelVideo, Status: domain.RequestStatusNew, Priority: domain.PriorityHigh, CreatedAt: now.Add(-3 * time.Minute), Description: "All smart devices disconnected after power outage"},
		{ID: 10, CustomerID: 10, CustomerName: "Sophia Lee", CustomerEmail: "sophia.lee@example.com", CustomerPhone: "+1 (555) 666-7777", RequestType: "Installation Complaint", Category: domain.CategoryDelivery, Channel: domain.ChannelSocial, Status: domain.RequestStatusEscalated, Priority: domain.PriorityHigh, CreatedAt: now.Add(-45 * time.Minute), Description: "Technician was unprofessional and left without completing installation"},
	}
	for _, request := range requests {
		store.AddRequest(request)
	}
}

func seedTickets(store *Store, now time.Time) error {
	phone := domain.ChannelPhone
	email := domain.ChannelEmail
	agentMike := int64(1)
	agentTaylor := int64(2)
	pending := domain.TicketStatusPending
	closed := domain.TicketStatusClosed

	tickets := []*domain.Ticket{
		{
			Subject:     "Doorbell Camera Connectivity Issue",
			Description: "Customer reports doorbell camera keeps going offline every few hours.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityHigh,
			Category:    "Connectivity",
			Channel:     &phone,
			CustomerID:  1,
			AgentID:     &agentMike,
			CreatedAt:   now.Add(-48 * time.Hour),
			Events: []domain.TicketEvent{
				{ID: 1, Date: now.Add(-48 * time.Hour), Type: domain.EventTypeCreated, Content: "Ticket created via phone call", Agent: "System"},
				{ID: 2, Date: now.Add(-48*time.Hour + 5*time.Minute), Type: domain.EventTypeAssignmentChange, Content: "Assigned to Mike Johnson", Agent: "System"},
				{ID: 3, Date: now.Add(-48*time.Hour + 10*time.Minute), Type: domain.EventTypeAgentMessage, Content: "I've reviewed your issue with the doorbell camera going offline. Let's troubleshoot this together.", Agent: "Mike Johnson"},
				{ID: 4, Date: now.Add(-48*time.Hour + 40*time.Minute), Type: domain.EventTypeNote, Content: "Camera is about 30 feet from the router with 2 walls in between. Signal strength might be an issue.", Agent: "Mike Johnson", Private: true},
				{ID: 5, Date: now.Add(-48*time.Hour + 45*time.Minute), Type: domain.EventTypeStatusChange, Content: "Status changed to Pending", Agent: "Mike Johnson", Status: &pending},
				{ID: 6, Date: now.Add(-24 * time.Hour), Type: domain.EventTypeCustomerMessage, Content: "I tried moving the router closer, but it's still going offline every few hours."},
				{ID: 7, Date: now.Add(-23 * time.Hour), Type: domain.EventTypeAgentMessage, Content: "Thank you for trying that. Let's try a factory reset of the doorbell camera. I'll send you instructions.", Agent: "Mike Johnson"},
				{ID: 8, Date: now.Add(-3 * time.Hour), Type: domain.EventTypeNote, Content: "Customer hasn't responded to reset instructions yet. Will follow up tomorrow if no response.", Agent: "Mike Johnson", Private: true},
			},
		},
		{
			Subject:     "Billing Inquiry - Premium Plan",
			Description: "Customer wants to know what's included in the Premium Security Bundle.",
			Status:      domain.TicketStatusClosed,
			Priority:    domain.TicketPriorityLow,
			Category:    "Billing",
			Channel:     &email,
			CustomerID:  1,
			AgentID:     &agentTaylor,
			CreatedAt:   now.Add(-6 * 24 * time.Hour),
			Events: []domain.TicketEvent{
				{ID: 1, Date: now.Add(-6 * 24 * time.Hour), Type: domain.EventTypeCreated, Content: "Ticket created via email", Agent: "System"},
				{ID: 2, Date: now.Add(-6*24*time.Hour + 5*time.Minute), Type: domain.EventTypeAssignmentChange, Content: "Assigned to Taylor Reed", Agent: "System"},
				{ID: 3, Date: now.Add(-6*24*time.Hour + 75*time.Minute), Type: domain.EventTypeAgentMessage, Content: "The Premium Security Bundle includes 24/7 professional monitoring, unlimited video history for up to 6 cameras, and priority support.", Agent: "Taylor Reed"},
				{ID: 4, Date: now.Add(-5 * 24 * time.Hour), Type: domain.EventTypeCustomerMessage, Content: "That sounds good. I'd like to upgrade to the Premium plan please."},
				{ID: 5, Date: now.Add(-5*24*time.Hour + 2*time.Hour), Type: domain.EventTypeResolution, Content: "Customer upgraded to Premium Security Bundle with promotional pricing", Agent: "Taylor Reed"},
				{ID: 6, Date: now.Add(-5*24*time.Hour + 2*time.Hour), Type: domain.EventTypeStatusChange, Content: "Status changed to Closed", Agent: "Taylor Reed", Status: &closed},
			},
		},
	}

	for _, ticket := range tickets {
		if len(ticket.Events) > 0 {
			ticket.UpdatedAt = ticket.Events[len(ticket.Events)-1].Date
		}
		store.mu.Lock()
		ticket.ID = store.nextTicketID
		store.nextTicketID++
		store.tickets = append(store.tickets, cloneTicket(ticket))
		store.mu.Unlock()
	}
	return nil
}

func seedAgents(store *Store, now time.Time, bcryptCost int) error {
	agents := []struct {
		id       int64
		name     string
		email    string
		password string
	}{
		{1, "Mike Johnson", "mike.johnson@console.example.com", "agent-demo-1"},
		{2, "Taylor Reed", "taylor.reed@console.example.com", "agent-demo-2"},
	}
	for _, entry := range agents {
		hash, err := auth.HashPassword(entry.password, bcryptCost)
		if err != nil {
			return err
		}
		store.AddAgent(domain.Agent{
			ID:           entry.id,
			Name:         entry.name,
			Email:        entry.email,
			PasswordHash: hash,
			CreatedAt:    now,
		})
	}
	return nil
}
