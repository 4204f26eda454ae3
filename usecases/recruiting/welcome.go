package recruiting

import (
	"context"
	"fmt"
	"log"

	"guildbot/models"
	"guildbot/services/templates"
)

// ProcessMemberAdded greets a freshly joined member with the server's
// configured welcome template. Servers without a template, or templates
// without a delivery channel, are silently skipped.
func (u *RecruitingUseCase) ProcessMemberAdded(ctx context.Context, event models.DiscordMemberEvent) error {
	log.Printf("📋 Starting member-add processing for user %s on server %s", event.UserID, event.ServerID)

	maybeServer, err := u.resolveActiveServer(ctx, event.ServerID)
	if err != nil {
		return err
	}
	if !maybeServer.IsPresent() {
		return nil
	}
	server := maybeServer.MustGet()

	user, err := u.usersService.ResolveUser(ctx, event.UserID, event.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to resolve joining user: %w", err)
	}

	maybeTemplate, err := u.templatesService.GetServerMessage(ctx, server.ID, models.ServerEventMemberAdd)
	if err != nil {
		return fmt.Errorf("failed to load welcome template: %w", err)
	}
	if !maybeTemplate.IsPresent() || maybeTemplate.MustGet().DiscordChannelID == "" {
		return nil
	}
	template := maybeTemplate.MustGet()

	values := templates.RenderValues{
		UserMention: "<@" + user.DiscordUserID + ">",
		ServerName:  server.Name,
	}
	if maybeRole, err := u.rolesService.GetServerRole(
		ctx, server.ID, models.UserRoleAdministrator); err == nil && maybeRole.IsPresent() {
		values.ServerAdminMention = "<@&" + maybeRole.MustGet().DiscordRoleID + ">"
	}

	body, _ := templates.ExtractApplyMarker(templates.Render(template.Text, values))
	if _, err := u.discordClient.SendMessage(template.DiscordChannelID, body); err != nil {
		return fmt.Errorf("failed to deliver welcome message: %w", err)
	}

	log.Printf("📋 Completed successfully - welcomed user %s", user.ID)
	return nil
}
