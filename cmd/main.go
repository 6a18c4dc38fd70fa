package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/sar-guardian/sar-landcover-poc/internal/classes"
	"github.com/sar-guardian/sar-landcover-poc/internal/dataset"
	"github.com/sar-guardian/sar-landcover-poc/internal/delivery"
	"github.com/sar-guardian/sar-landcover-poc/internal/hub"
	"github.com/sar-guardian/sar-landcover-poc/internal/inference"
	"github.com/sar-guardian/sar-landcover-poc/internal/ml"
	"github.com/sar-guardian/sar-landcover-poc/internal/notification"
	"github.com/sar-guardian/sar-landcover-poc/internal/preprocess"
	"github.com/sar-guardian/sar-landcover-poc/internal/properties"
	"github.com/sar-guardian/sar-landcover-poc/internal/render"
)

func printBanner() {
	figure1 := figure.NewFigure("SAR", "isometric1", true)
	figure2 := figure.NewFigure("Guardian", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

// selectDescriptor lists the descriptor files under data/model and loads the
// chosen one together with its class mapping table.
func selectDescriptor(reader *bufio.Reader) (preprocess.Descriptor, *classes.Mapping, error) {
	modelFolderPath := fmt.Sprintf("%s/data/model/", properties.RootPath())

	entries, err := os.ReadDir(modelFolderPath)
	if err != nil {
		return preprocess.Descriptor{}, nil, fmt.Errorf("error reading model folder: %w", err)
	}

	var descriptorFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".json") {
			descriptorFiles = append(descriptorFiles, entry.Name())
		}
	}
	if len(descriptorFiles) == 0 {
		return preprocess.Descriptor{}, nil, fmt.Errorf("no model descriptors found in %s", modelFolderPath)
	}

	fmt.Println("\033[32m\nAvailable models:\033[0m")
	for i, name := range descriptorFiles {
		fmt.Printf("\033[32m%d. %s\033[0m\n", i+1, name)
	}

	fmt.Print("\033[34mEnter the number of the model you want to use: \033[0m")
	var modelChoice int
	if _, err := fmt.Scan(&modelChoice); err != nil || modelChoice < 1 || modelChoice > len(descriptorFiles) {
		return preprocess.Descriptor{}, nil, fmt.Errorf("invalid model choice")
	}
	reader.ReadString('\n')

	desc, err := preprocess.LoadDescriptor(filepath.Join(modelFolderPath, descriptorFiles[modelChoice-1]))
	if err != nil {
		return preprocess.Descriptor{}, nil, err
	}

	mapping, err := classes.ForVariant(desc.Variant)
	if err != nil {
		return preprocess.Descriptor{}, nil, err
	}
	if err := mapping.ValidateClassCount(desc.Classes); err != nil {
		return preprocess.Descriptor{}, nil, err
	}
	return desc, mapping, nil
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print("\033[34m" + prompt + "\033[0m")
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func runBatchInference(reader *bufio.Reader) {
	desc, mapping, err := selectDescriptor(reader)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}

	vhDir := readLine(reader, "Enter the VH tile directory: ")
	vvDir := readLine(reader, "Enter the VV tile directory: ")
	angleDir := ""
	if desc.Normalization == preprocess.NormalizationIncidence {
		angleDir = readLine(reader, "Enter the incidence-angle tile directory: ")
	}
	outDir := readLine(reader, "Enter the output directory: ")

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Printf("\n\033[31mError creating output directory: %s\033[0m\n", err.Error())
		return
	}

	client, err := ml.NewClient(properties.ModelServerAddr(), desc.Variant)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.ValidateShape(ctx, desc); err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		notification.SendDiscordErrorNotification(fmt.Sprintf("SAR Guardian CLI\n\n%s", err.Error()))
		return
	}

	orchestrator, err := inference.New(desc, mapping, client, outDir)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}

	start := time.Now()
	results, err := orchestrator.ProcessBatch(ctx, vhDir, vvDir, angleDir)
	if err != nil {
		fmt.Printf("\n\033[31mError running inference: %s\033[0m\n", err.Error())
		notification.SendDiscordErrorNotification(fmt.Sprintf("SAR Guardian CLI\n\nError running inference: %s", err.Error()))
		return
	}

	indexPath := filepath.Join(outDir, "footprints.geojson")
	if err := inference.WriteFootprintIndex(indexPath, results); err != nil {
		fmt.Printf("\n\033[31mError writing footprint index: %s\033[0m\n", err.Error())
		return
	}

	message := fmt.Sprintf("Predicted %d tiles in %v\nOutput directory: %s\nFootprint index: %s",
		len(results), time.Since(start), outDir, indexPath)
	fmt.Printf("\n\033[32mSuccessful analysis!\n%s\033[0m\n", message)
	notification.SendDiscordSuccessNotification(fmt.Sprintf("SAR Guardian CLI\n\n%s", message))
}

func runEvaluation(reader *bufio.Reader) {
	desc, mapping, err := selectDescriptor(reader)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}

	vhDir := readLine(reader, "Enter the VH tile directory: ")
	vvDir := readLine(reader, "Enter the VV tile directory: ")
	angleDir := ""
	if desc.Normalization == preprocess.NormalizationIncidence {
		angleDir = readLine(reader, "Enter the incidence-angle tile directory: ")
	}
	labelDir := readLine(reader, "Enter the label tile directory: ")

	client, err := ml.NewClient(properties.ModelServerAddr(), desc.Variant)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.ValidateShape(ctx, desc); err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}

	resultDir := fmt.Sprintf("%s/data/result", properties.RootPath())
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		fmt.Printf("\n\033[31mError creating result directory: %s\033[0m\n", err.Error())
		return
	}
	reportPath := filepath.Join(resultDir, fmt.Sprintf("%s_evaluation_%s.csv", desc.Variant, time.Now().Format("2006-01-02")))

	summary, err := delivery.EvaluateModel(ctx, desc, mapping, client, vhDir, vvDir, angleDir, labelDir, reportPath)
	if err != nil {
		fmt.Printf("\n\033[31mError evaluating model: %s\033[0m\n", err.Error())
		notification.SendDiscordErrorNotification(fmt.Sprintf("SAR Guardian CLI\n\nError evaluating model: %s", err.Error()))
		return
	}

	fmt.Printf("\n\033[32mPixel accuracy: %.4f | Mean IoU: %.4f | Report: %s\033[0m\n",
		summary.PixelAccuracy, summary.MeanIoU, reportPath)
}

func runCreateDataset(reader *bufio.Reader) {
	fmt.Println("\033[33m\nWarning:\033[0m")
	fmt.Println("\033[33mOnly training tiles belong here. Split validation tiles off first;\033[0m")
	fmt.Println("\033[33maugmented copies of validation data silently inflate scores.\n\033[0m")

	desc, mapping, err := selectDescriptor(reader)
	if err != nil {
		fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
		return
	}

	vhDir := readLine(reader, "Enter the VH tile directory: ")
	vvDir := readLine(reader, "Enter the VV tile directory: ")
	labelDir := readLine(reader, "Enter the label tile directory: ")
	copiesStr := readLine(reader, "Enter the number of augmented copies per tile: ")
	copies, err := strconv.Atoi(copiesStr)
	if err != nil || copies < 1 {
		fmt.Printf("\n\033[31mInvalid copy count.\033[0m\n")
		return
	}

	outDir := fmt.Sprintf("%s/data/training/%s_%s", properties.RootPath(), mapping.Variant(), time.Now().Format("2006-01-02"))

	err = delivery.CreateTrainingDataset(vhDir, vvDir, labelDir, outDir, copies, dataset.DefaultAugmentConfig(), mapping)
	if err == nil {
		// training needs the same preprocessing contract as inference
		err = preprocess.SaveDescriptor(filepath.Join(outDir, "descriptor.json"), desc)
	}
	if err != nil {
		fmt.Printf("\n\033[31mError creating dataset: %s\033[0m\n", err.Error())
		notification.SendDiscordErrorNotification(fmt.Sprintf("SAR Guardian CLI\n\nError creating dataset: %s", err.Error()))
		return
	}

	fmt.Printf("\n\033[32mDataset created successfully at %s\033[0m\n", outDir)
	notification.SendDiscordSuccessNotification(fmt.Sprintf("SAR Guardian CLI\n\nDataset created successfully!\n\nFolder: %s", outDir))
}

func runDownloadTile(reader *bufio.Reader) {
	fmt.Println("\033[33m\nWarning:\033[0m")
	fmt.Println("\033[33mDownloads use the Copernicus Process API; COPERNICUS_CLIENT_ID,\033[0m")
	fmt.Println("\033[33mCOPERNICUS_CLIENT_SECRET and COPERNICUS_TOKEN_URL must be set.\n\033[0m")

	var bbox hub.BBox
	for i, prompt := range []string{"min longitude", "min latitude", "max longitude", "max latitude"} {
		valueStr := readLine(reader, fmt.Sprintf("Enter %s: ", prompt))
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			fmt.Printf("\n\033[31mInvalid coordinate.\033[0m\n")
			return
		}
		bbox[i] = value
	}

	dateStr := readLine(reader, "Enter the acquisition date (YYYY-MM-DD): ")
	endDate, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		fmt.Printf("\n\033[31mInvalid date.\033[0m\n")
		return
	}
	startDate := endDate.AddDate(0, 0, -12) // one Sentinel-1 revisit cycle

	dir := fmt.Sprintf("%s/data/downloads", properties.RootPath())
	path, err := hub.DownloadTile(dir, startDate, endDate, bbox, 2500, 2500)
	if err != nil {
		fmt.Printf("\n\033[31mError downloading tile: %s\033[0m\n", err.Error())
		notification.SendDiscordErrorNotification(fmt.Sprintf("SAR Guardian CLI\n\nError downloading tile: %s", err.Error()))
		return
	}

	fmt.Printf("\n\033[32mTile downloaded to %s\033[0m\n", path)
}

func runRenderPreview(reader *bufio.Reader) {
	predictionPath := readLine(reader, "Enter the prediction raster path: ")
	outputPath := strings.TrimSuffix(predictionPath, filepath.Ext(predictionPath)) + ".png"

	if err := render.RenderPrediction(predictionPath, outputPath); err != nil {
		fmt.Printf("\n\033[31mError rendering preview: %s\033[0m\n", err.Error())
		return
	}
}

func listVariants() {
	fmt.Println("\033[32m\nKnown model variants:\033[0m")
	for _, desc := range preprocess.DefaultDescriptors {
		mapping, err := classes.ForVariant(desc.Variant)
		if err != nil {
			continue
		}
		fmt.Printf("\033[32m- %s: %d classes, normalization=%s, speckle filter=%v\033[0m\n",
			desc.Variant, mapping.Size(), desc.Normalization, desc.SpeckleFilter)
	}
}

func initCLI() {
	defer func() {
		if r := recover(); r != nil {
			pc, file, line, ok := runtime.Caller(3)
			var location string
			if ok {
				fn := runtime.FuncForPC(pc)
				location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
			} else {
				location = "Unknown location"
			}

			fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
			fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
			fmt.Printf("\033[31mExiting...\033[0m\n")

			stack := debug.Stack()
			errMessage := fmt.Sprintf("SAR Guardian CLI panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
			if err := notification.SendDiscordErrorNotification(errMessage); err != nil {
				fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
			}
		}
	}()
	printBanner()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\033[34m===================\033[0m")
		fmt.Println("\033[34m1. Run batch inference over a tile directory\033[0m")
		fmt.Println("\033[34m2. Evaluate a model on labeled tiles\033[0m")
		fmt.Println("\033[34m3. Create an augmented training dataset\033[0m")
		fmt.Println("\033[34m4. Download a Sentinel-1 tile\033[0m")
		fmt.Println("\033[34m5. Render a prediction preview\033[0m")
		fmt.Println("\033[34m6. List model variants\033[0m")
		fmt.Println("\033[34m7. Exit\033[0m")
		fmt.Println("\033[34mEnter your choice:\033[0m")

		var choice int
		if _, err := fmt.Scan(&choice); err != nil {
			fmt.Printf("\n\033[31mInvalid input. Please enter a number.\033[0m\n")
			fmt.Scanln()
			continue
		}
		reader.ReadString('\n')

		switch choice {
		case 1:
			runBatchInference(reader)
		case 2:
			runEvaluation(reader)
		case 3:
			runCreateDataset(reader)
		case 4:
			runDownloadTile(reader)
		case 5:
			runRenderPreview(reader)
		case 6:
			listVariants()
		case 7:
			println("Exiting...")
			return
		default:
			println("Invalid choice. Please try again.")
		}
	}
}

func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			godotenv.Load(".env")
		}
	}

	godal.RegisterAll()
	initCLI()
}
