package main

import (
	"context"
	"database/sql"
	_ "embed"
	"flag"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/infrastructure/database/postgres"
	"github.com/vfg2006/cookaing-api/infrastructure/repository"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup"
	"github.com/vfg2006/cookaing-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

//go:embed schema.sql
var schemaSQL string

type seedOptions struct {
	OrgID         int
	AdminEmail    string
	AdminPassword string
	SeedProducts  bool
}

func main() {
	var opts seedOptions
	flag.IntVar(&opts.OrgID, "org", 1, "organização usada no seed")
	flag.StringVar(&opts.AdminEmail, "admin-email", "", "email do administrador inicial (vazio não cria)")
	flag.StringVar(&opts.AdminPassword, "admin-password", "", "senha do administrador inicial")
	flag.BoolVar(&opts.SeedProducts, "products", true, "grava a tabela estática de produtos no banco")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	if err := applySchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}

	if err := seed(ctx, conn, opts); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar seed")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}

// applySchema executa cada statement do schema dentro de uma única transação
func applySchema(ctx context.Context, conn *postgres.Connection) error {
	statements := splitStatements(schemaSQL)

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro no statement %d: %w", i+1, err)
			}
		}
		logrus.WithField("statements", len(statements)).Info("Schema aplicado")
		return nil
	})
}

func splitStatements(script string) []string {
	var statements []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func seed(ctx context.Context, conn *postgres.Connection, opts seedOptions) error {
	if opts.AdminEmail != "" {
		if err := seedAdmin(ctx, repository.NewUserRepository(conn), opts); err != nil {
			return err
		}
	}

	if opts.SeedProducts {
		return seedStaticProducts(ctx, repository.NewAffiliateProductRepository(conn), opts.OrgID, lookup.DefaultStaticProducts)
	}

	return nil
}

func seedAdmin(ctx context.Context, repo repository.UserRepository, opts seedOptions) error {
	if len(opts.AdminPassword) < 8 {
		return fmt.Errorf("senha do administrador deve ter pelo menos 8 caracteres")
	}

	existing, err := repo.GetUserByEmail(ctx, strings.ToLower(opts.AdminEmail))
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.WithField("email", existing.Email).Info("Administrador já existe, ignorando")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := repo.CreateUser(ctx, &domain.User{
		OrgID:        opts.OrgID,
		Name:         "Admin",
		Lastname:     "CookAIng",
		Email:        strings.ToLower(opts.AdminEmail),
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       1,
	})
	if err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}

	logrus.WithField("user_id", admin.ID).Info("Administrador criado")
	return nil
}

// seedStaticProducts grava os produtos estáticos para a organização. Erros individuais não interrompem o seed.
func seedStaticProducts(ctx context.Context, repo repository.AffiliateProductRepository, orgID int, products []domain.AffiliateProduct) error {
	logrus.Infof("Iniciando inserção de %d produtos estáticos...", len(products))

	successCount, errorCount := 0, 0
	for _, p := range products {
		product := p
		product.OrgID = orgID
		if product.SKU == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return err
			}
			product.SKU = "static-" + id
		}

		if _, err := repo.CreateAffiliateProduct(ctx, &product); err != nil {
			logrus.WithError(err).WithField("sku", product.SKU).Error("Erro ao inserir produto")
			errorCount++
			continue
		}
		successCount++
	}

	logrus.WithFields(logrus.Fields{
		"success": successCount,
		"errors":  errorCount,
	}).Info("Inserção de produtos concluída")

	if successCount == 0 && errorCount > 0 {
		return fmt.Errorf("nenhum produto inserido (%d erros)", errorCount)
	}
	return nil
}
