package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"guildbot/botlog"
	discordclient "guildbot/clients/discord"
	"guildbot/config"
	"guildbot/db"
	"guildbot/handlers"
	"guildbot/services/applicants"
	"guildbot/services/channels"
	"guildbot/services/guilds"
	"guildbot/services/permissions"
	"guildbot/services/roles"
	"guildbot/services/servers"
	"guildbot/services/templates"
	"guildbot/services/txmanager"
	"guildbot/services/users"
	"guildbot/usecases/recruiting"
	"guildbot/usecases/sharedroles"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	serversRepo := db.NewPostgresServersRepository(dbConn, cfg.DatabaseSchema)
	gamesRepo := db.NewPostgresGamesRepository(dbConn, cfg.DatabaseSchema)
	guildsRepo := db.NewPostgresGuildsRepository(dbConn, cfg.DatabaseSchema)
	usersRepo := db.NewPostgresUsersRepository(dbConn, cfg.DatabaseSchema)
	channelsRepo := db.NewPostgresChannelPurposesRepository(dbConn, cfg.DatabaseSchema)
	rolesRepo := db.NewPostgresUserRolesRepository(dbConn, cfg.DatabaseSchema)
	applicantsRepo := db.NewPostgresGuildApplicantsRepository(dbConn, cfg.DatabaseSchema)
	templatesRepo := db.NewPostgresMessageTemplatesRepository(dbConn, cfg.DatabaseSchema)

	txManager := txmanager.NewTransactionManager(dbConn)

	// Discord session shared by the client and the event handler
	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}
	discordClient := discordclient.NewDiscordClient(session)

	serversService := servers.NewServersService(serversRepo)
	usersService := users.NewUsersService(usersRepo)
	guildsService := guilds.NewGuildsService(guildsRepo, gamesRepo)
	channelsService := channels.NewChannelsService(channelsRepo)
	rolesService := roles.NewRolesService(rolesRepo)
	permissionsService := permissions.NewPermissionsService(discordClient, rolesService)
	applicantsService := applicants.NewApplicantsService(applicantsRepo)
	templatesService := templates.NewTemplatesService(templatesRepo)
	botLogger := botlog.New(channelsService, discordClient)

	recruitingUseCase := recruiting.NewRecruitingUseCase(
		discordClient,
		serversService,
		usersService,
		guildsService,
		channelsService,
		rolesService,
		permissionsService,
		applicantsService,
		templatesService,
		txManager,
		botLogger,
	)
	sharedRolesUseCase := sharedroles.NewSharedRolesUseCase(
		discordClient,
		serversService,
		guildsService,
		rolesService,
		botLogger,
	)

	eventsHandler := handlers.NewDiscordEventsHandler(session, recruitingUseCase, sharedRolesUseCase)
	if err := eventsHandler.StartBot(); err != nil {
		return err
	}
	defer eventsHandler.StopBot()

	opsHandler := handlers.NewOpsHTTPHandler(serversService, applicantsService)

	router := mux.NewRouter()
	router.HandleFunc("/health", opsHandler.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/servers/{serverID}/applications", opsHandler.HandleListApplications).
		Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet},
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Ops server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ HTTP server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	log.Printf("✅ Shutdown complete")
	return nil
}
